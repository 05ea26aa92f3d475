package domain

import "strings"

// ListDelimiter separates the entries of a stored tag or feature list.
const ListDelimiter = ","

// JoinList is the storage form of a list; an empty list joins to "".
func JoinList(list []string) string {
	return strings.Join(list, ListDelimiter)
}

// SplitList reverses JoinList. An empty string yields an empty list.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ListDelimiter)
}

// upperSnake turns "white-paper" or "White Paper" into "WHITE_PAPER".
func upperSnake(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return strings.ToUpper(s)
}
