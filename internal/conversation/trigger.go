package conversation

import "regexp"

// finalizeIntent matches assistant phrasings that offer to send the brief
// onward. The heuristic favors recall: a false positive only shows an
// extra affordance, a false negative still leaves manual finalization.
var finalizeIntent = regexp.MustCompile(`(?i)(would you like me to send|shall i send|ready to send|send (the )?(final )?(brief|proposal|plan))`)

// DetectFinalizeIntent reports whether assistant text signals readiness to
// finalize. Pure and deterministic; applied only to assistant messages.
func DetectFinalizeIntent(text string) bool {
	return finalizeIntent.MatchString(text)
}
