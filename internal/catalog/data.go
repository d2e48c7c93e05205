package catalog

// Built-in word lists. Words are stored lower-cased so lookups can
// compare directly against normalized input.
var builtinWords = map[string][]Entry{
	"Spanish": {
		{Word: "hola", Translation: "hello"},
		{Word: "gracias", Translation: "thank you"},
		{Word: "por favor", Translation: "please"},
		{Word: "adiós", Translation: "goodbye"},
		{Word: "buenos días", Translation: "good morning"},
		{Word: "buenas noches", Translation: "good night"},
		{Word: "casa", Translation: "house"},
		{Word: "perro", Translation: "dog"},
		{Word: "gato", Translation: "cat"},
		{Word: "agua", Translation: "water"},
	},
	"French": {
		{Word: "bonjour", Translation: "hello"},
		{Word: "merci", Translation: "thank you"},
		{Word: "s'il vous plaît", Translation: "please"},
		{Word: "au revoir", Translation: "goodbye"},
		{Word: "maison", Translation: "house"},
		{Word: "chien", Translation: "dog"},
		{Word: "chat", Translation: "cat"},
		{Word: "eau", Translation: "water"},
	},
	"German": {
		{Word: "hallo", Translation: "hello"},
		{Word: "danke", Translation: "thank you"},
		{Word: "bitte", Translation: "please"},
		{Word: "auf wiedersehen", Translation: "goodbye"},
		{Word: "haus", Translation: "house"},
		{Word: "hund", Translation: "dog"},
		{Word: "katze", Translation: "cat"},
		{Word: "wasser", Translation: "water"},
	},
	"Italian": {
		{Word: "ciao", Translation: "hello"},
		{Word: "grazie", Translation: "thank you"},
		{Word: "per favore", Translation: "please"},
		{Word: "arrivederci", Translation: "goodbye"},
		{Word: "casa", Translation: "house"},
		{Word: "cane", Translation: "dog"},
		{Word: "gatto", Translation: "cat"},
		{Word: "acqua", Translation: "water"},
	},
	"Japanese": {
		{Word: "こんにちは", Translation: "hello"},
		{Word: "ありがとう", Translation: "thank you"},
		{Word: "お願いします", Translation: "please"},
		{Word: "さようなら", Translation: "goodbye"},
		{Word: "家", Translation: "house"},
		{Word: "犬", Translation: "dog"},
		{Word: "猫", Translation: "cat"},
		{Word: "水", Translation: "water"},
	},
	"Korean": {
		{Word: "안녕하세요", Translation: "hello"},
		{Word: "감사합니다", Translation: "thank you"},
		{Word: "주세요", Translation: "please"},
		{Word: "안녕히 가세요", Translation: "goodbye"},
		{Word: "집", Translation: "house"},
		{Word: "개", Translation: "dog"},
		{Word: "고양이", Translation: "cat"},
		{Word: "물", Translation: "water"},
	},
	"Chinese": {
		{Word: "你好", Translation: "hello"},
		{Word: "谢谢", Translation: "thank you"},
		{Word: "请", Translation: "please"},
		{Word: "再见", Translation: "goodbye"},
		{Word: "房子", Translation: "house"},
		{Word: "狗", Translation: "dog"},
		{Word: "猫", Translation: "cat"},
		{Word: "水", Translation: "water"},
	},
}
