package parser

import "strconv"

func parseIntLexeme(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloatLexeme(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
