package denylist

// defaultCommonPasswords is the built-in set of passwords rejected outright.
// Deployments can extend or replace it via file or storage loading.
var defaultCommonPasswords = []string{
	"password", "password1", "123456", "12345678", "qwerty", "abc123",
	"monkey", "1234567", "letmein", "trustno1", "dragon", "baseball",
	"iloveyou", "master", "sunshine", "ashley", "bailey", "passw0rd",
	"shadow", "123123", "654321", "superman", "qazwsx", "michael",
	"football", "password123", "admin", "welcome", "login", "hello",
	"charlie", "donald", "password2", "qwerty123", "123qwe",
}

// defaultKeyboardWalks are adjacent-key sequences flagged as warnings.
// Each pattern also matches reversed.
var defaultKeyboardWalks = []string{
	"qwerty", "asdfgh", "zxcvbn", "qwertyu", "asdfghj", "zxcvbnm",
	"1234567", "abcdefg", "7654321", "gfedcba", "aaaaaaa", "1111111",
}
