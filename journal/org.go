package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/ergung/position-calculator/pkg/id"
)

// FormatOrg renders an Entry as an Org-mode block suitable for pasting into
// a trading journal. Structured facts go in a PROPERTIES drawer; the
// Thesis/Execution/Review headings are left for the trader to fill in.
func FormatOrg(e Entry, o Options) string {
	f := Fields(e, o)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Plan: %s %s (%s)\n", e.Side, e.Mode, id.Short(e.Ref)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", e.Ref))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", e.Date.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", e.Side))
	b.WriteString(fmt.Sprintf(":ENTRY: %s\n", f[2]))
	b.WriteString(fmt.Sprintf(":STOP: %s\n", f[3]))
	b.WriteString(fmt.Sprintf(":TAKE_PROFIT: %s\n", f[4]))
	if e.HasTarget {
		b.WriteString(fmt.Sprintf(":REWARD_R: %g\n", e.RewardR))
	}
	b.WriteString(fmt.Sprintf(":RISK: %s %s\n", f[5], o.Display.QuoteCurrency))
	b.WriteString(fmt.Sprintf(":POSITION_VALUE: %s %s\n", f[6], o.Display.QuoteCurrency))
	b.WriteString(fmt.Sprintf(":QUANTITY: %s\n", o.Display.Quantity(e.Quantity)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}
