package utils

// MaskToken redacts a bearer token down to its first four characters so it
// can appear in logs.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return "***"
	}
	return token[:4] + "***"
}
