package cli

import (
	"strconv"
	"strings"

	"github.com/dgaranin/vaxkeeper/internal/campaign"
)

const blanks = " \t"

// nextToken splits off the first blank-delimited token of s and returns it
// with the left-trimmed remainder. A string with no token yields ("", "").
func nextToken(s string) (token, rest string) {
	s = strings.TrimLeft(s, blanks)
	i := strings.IndexAny(s, blanks)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i+1:], blanks)
}

// parseDate reads a dd-mm-yyyy date string. It checks syntax only; calendar
// validity is the caller's concern (campaign.Date.Valid).
func parseDate(s string) (campaign.Date, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return campaign.Date{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return campaign.Date{}, false
	}
	return campaign.Date{Day: day, Month: month, Year: year}, true
}

// extractUser parses a user name at the start of args. The name may be
// enclosed in double quotes, in which case it may contain blanks; otherwise
// it runs to the first blank. The remainder is returned left-trimmed. ok is
// false on an unclosed quote.
func extractUser(args string) (user, rest string, ok bool) {
	if strings.HasPrefix(args, `"`) {
		end := strings.IndexByte(args[1:], '"')
		if end < 0 {
			return "", "", false
		}
		return args[1 : 1+end], strings.TrimLeft(args[2+end:], blanks), true
	}
	i := strings.IndexAny(args, blanks)
	if i < 0 {
		return args, "", true
	}
	return args[:i], strings.TrimLeft(args[i+1:], blanks), true
}

// extractUserArg reads a user name that spans the whole argument string:
// quoted, or taken verbatim. ok is false when args is empty or the quote is
// never closed, meaning no user was named.
func extractUserArg(args string) (string, bool) {
	if args == "" {
		return "", false
	}
	if strings.HasPrefix(args, `"`) {
		end := strings.IndexByte(args[1:], '"')
		if end < 0 {
			return "", false
		}
		return args[1 : 1+end], true
	}
	return args, true
}
