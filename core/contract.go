package core

import "github.com/rs/zerolog"

// Contract checks a programming invariant such as a tier or obstacle kind reference
// Dev builds panic on violation; release builds log and report false so the caller skips the action
func Contract(log zerolog.Logger, ok bool, msg string) bool {
	if ok {
		return true
	}
	if strictContracts {
		panic("contract violation: " + msg)
	}
	log.Error().Str("contract", msg).Msg("contract violation ignored")
	return false
}
