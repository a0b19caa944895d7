package llm

import (
	"fmt"

	"github.com/swiftsites/swiftsites-api/internal/domain"
)

// BriefPrompt renders a brief as the single user message sent in final
// mode. The field order matches what the strategist persona expects.
func BriefPrompt(b domain.Brief) string {
	return fmt.Sprintf(`Company: %s
Industry: %s
Budget: %s
Style: %s
Goals: %s
`, b.CompanyName, b.Industry, b.Budget, b.Style, b.Description)
}
