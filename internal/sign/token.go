// Package sign turns extracted hand features into confirmed sign tokens.
// It holds the rule-based classifier, the majority-vote stability buffer,
// and the emission cooldown gate.
package sign

// Token is a discrete vocabulary item a hand configuration maps to.
// The zero value means "no sign".
type Token string

const (
	TokenNone     Token = ""
	TokenHello    Token = "HELLO"
	TokenThankYou Token = "THANK YOU"
	TokenPlease   Token = "PLEASE"
	TokenYou      Token = "YOU"
	TokenMe       Token = "ME/I"
	TokenPeace    Token = "PEACE"
	TokenWater    Token = "WATER"
	TokenYes      Token = "YES"
	TokenStop     Token = "STOP"
)

// Vocabulary returns every token the classifier can produce.
func Vocabulary() []Token {
	return []Token{
		TokenHello,
		TokenThankYou,
		TokenPlease,
		TokenYou,
		TokenMe,
		TokenPeace,
		TokenWater,
		TokenYes,
		TokenStop,
	}
}
