package telegram

import (
	"regexp"
	"strings"
	"unicode"
)

// CommandKind identifies what a chat message asks for
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandStart
	CommandHelp
	CommandTeams
	CommandPredict
	// CommandMatchup is free text of the form "A vs B"
	CommandMatchup
	// CommandText is free text the bot does not understand
	CommandText
)

// Command is a parsed chat message
type Command struct {
	Kind CommandKind
	Home string
	Away string
	// Valid is false when a predict command or matchup lacks a team
	Valid bool
}

const maxTeamNameLen = 64

var matchupPattern = regexp.MustCompile(`(?i)^(.+?)\s+vs\.?\s+(.+)$`)

// ParseCommand classifies a message and extracts team names where present.
func ParseCommand(text string) Command {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "/") {
		name, rest := text, ""
		if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
			name, rest = text[:i], text[i:]
		}
		// "/predict@MyBot" in group chats
		name, _, _ = strings.Cut(strings.ToLower(name), "@")

		switch name {
		case "/start":
			return Command{Kind: CommandStart, Valid: true}
		case "/help":
			return Command{Kind: CommandHelp, Valid: true}
		case "/teams":
			return Command{Kind: CommandTeams, Valid: true}
		case "/predict":
			home, away, ok := ParseMatchup(rest)
			return Command{Kind: CommandPredict, Home: home, Away: away, Valid: ok}
		default:
			return Command{Kind: CommandUnknown}
		}
	}

	if containsVs(text) {
		if home, away, ok := ParseMatchup(text); ok {
			return Command{Kind: CommandMatchup, Home: home, Away: away, Valid: true}
		}
	}
	return Command{Kind: CommandText}
}

// ParseMatchup splits "Home vs Away" into sanitized team names. ok is false
// when either side is empty.
func ParseMatchup(text string) (home, away string, ok bool) {
	m := matchupPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", "", false
	}
	home = sanitizeTeamName(m[1])
	away = sanitizeTeamName(m[2])
	if home == "" || away == "" {
		return "", "", false
	}
	return home, away, true
}

func containsVs(text string) bool {
	for _, f := range strings.Fields(strings.ToLower(text)) {
		if f == "vs" || f == "vs." {
			return true
		}
	}
	return false
}

// sanitizeTeamName drops control and formatting characters, collapses runs of
// whitespace and caps the length.
func sanitizeTeamName(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	space := false
	n := 0
	for _, r := range s {
		if n >= maxTeamNameLen {
			break
		}
		switch {
		case unicode.IsSpace(r):
			space = sb.Len() > 0
			continue
		case unicode.IsControl(r), unicode.Is(unicode.Cf, r):
			continue
		}
		if space {
			sb.WriteByte(' ')
			n++
			space = false
		}
		sb.WriteRune(r)
		n++
	}

	return sb.String()
}
