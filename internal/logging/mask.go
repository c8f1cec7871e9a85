package logging

// Mask hides a secret for log output, keeping at most a two character prefix
// of values long enough that the prefix reveals nothing useful.
func Mask(secret string) string {
	switch {
	case secret == "":
		return ""
	case len(secret) < 8:
		return "***"
	default:
		return secret[:2] + "***"
	}
}
