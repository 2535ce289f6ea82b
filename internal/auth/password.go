// Package auth implements the static action password predicate. This is a
// closed lookup table for demo gating, not a production auth mechanism.
package auth

// actionSecrets maps an action name to the secret that authorizes it.
var actionSecrets = map[string]string{
	"register_product": "manufacturer123",
	"fund_escrow":      "escrow456",
	"add_event":        "logistics789",
}

// Check reports whether password authorizes action. Unknown actions always
// return false.
func Check(password, action string) bool {
	secret, ok := actionSecrets[action]
	return ok && password == secret
}
