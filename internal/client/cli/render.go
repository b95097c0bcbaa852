package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/client/services"
	"github.com/fatih/color"
)

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func expiry(k *models.SecurityKey, now time.Time) string {
	s := formatDate(k.ExpiresAt)
	if k.Expired(now) {
		s += " " + color.RedString("(expired)")
	}
	return s
}

func renderKeyTable(w io.Writer, keys []*models.SecurityKey, now time.Time) {
	if len(keys) == 0 {
		fmt.Fprintln(w, color.YellowString("!")+" No keys found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tUSERNAME\tEXPIRES\tTAGS")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			k.ID, k.Name, k.Type.Label(), orDash(k.Username), expiry(k, now), orDash(strings.Join(k.Tags, ", ")))
	}
	tw.Flush()
}

func renderKey(w io.Writer, k *models.SecurityKey, reveal bool, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", color.New(color.Bold).Sprint(k.Name))
	fmt.Fprintf(tw, "Type:\t%s\n", k.Type.Label())
	fmt.Fprintf(tw, "Username:\t%s\n", orDash(k.Username))
	fmt.Fprintf(tw, "URL:\t%s\n", orDash(k.URL))
	fmt.Fprintf(tw, "Value:\t%s\n", services.Mask(k.Value, reveal))
	fmt.Fprintf(tw, "Description:\t%s\n", orDash(k.Description))
	fmt.Fprintf(tw, "Tags:\t%s\n", orDash(strings.Join(k.Tags, ", ")))
	fmt.Fprintf(tw, "Expires:\t%s\n", expiry(k, now))
	fmt.Fprintf(tw, "Created:\t%s\n", k.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(tw, "Updated:\t%s\n", k.UpdatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(tw, "ID:\t%s\n", k.ID)
	tw.Flush()
}

func renderSummary(w io.Writer, s services.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total keys:\t%d\n", s.Total)
	for _, t := range models.KeyTypes {
		fmt.Fprintf(tw, "%s:\t%d\n", t.Label(), s.ByType[t])
	}
	fmt.Fprintf(tw, "Expired:\t%s\n", countColor(s.Expired, color.RedString))
	fmt.Fprintf(tw, "Expiring within %d days:\t%s\n", int(services.ExpiringWindow.Hours()/24), countColor(s.ExpiringSoon, color.YellowString))
	tw.Flush()
}

func countColor(n int, paint func(string, ...interface{}) string) string {
	if n == 0 {
		return "0"
	}
	return paint("%d", n)
}

func renderProfile(w io.Writer, p *models.Profile) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	fmt.Fprintf(tw, "Full name:\t%s\n", orDash(p.FullName))
	tw.Flush()
}
