package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/bloodbank/internal/client/models"
)

// recentDonors is how many donors the overview shows.
const recentDonors = 5

// Status probes the API and prints the resulting mode.
func (a *App) Status(ctx context.Context) error {
	if a.probe(ctx) {
		fmt.Fprintf(a.out, "API %s is reachable (online)\n", a.config.APIBaseURL)
	} else {
		fmt.Fprintf(a.out, "API %s is unreachable (offline, using local data)\n", a.config.APIBaseURL)
	}
	return nil
}

func (a *App) Donors(ctx context.Context) error {
	res, err := a.data.Donors(ctx)
	if err != nil {
		a.log.Error(ctx, "error loading donors", "err", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	printDonors(a.out, res.Data, res.Source)
	return nil
}

func (a *App) Requests(ctx context.Context) error {
	res, err := a.data.Requests(ctx)
	if err != nil {
		a.log.Error(ctx, "error loading requests", "err", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	printRequests(a.out, res.Data, res.Source)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	stats, err := a.data.Stats(ctx)
	if err != nil {
		a.log.Error(ctx, "error loading stats", "err", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	printStats(a.out, stats)
	return nil
}

// Refresh reloads the whole dashboard: probe, overview, recent donors and
// the request list.
func (a *App) Refresh(ctx context.Context) error {
	a.probe(ctx)

	stats, err := a.data.Stats(ctx)
	if err != nil {
		a.log.Error(ctx, "error refreshing dashboard", "err", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	donors, err := a.data.Donors(ctx)
	if err != nil {
		a.log.Error(ctx, "error refreshing dashboard", "err", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	requests, err := a.data.Requests(ctx)
	if err != nil {
		a.log.Error(ctx, "error refreshing dashboard", "err", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Mode: %s\n", a.Mode())
	printStats(a.out, stats)

	recent := donors.Data
	if len(recent) > recentDonors {
		recent = recent[:recentDonors]
	}
	fmt.Fprintln(a.out, "Recent donors:")
	printDonors(a.out, recent, donors.Source)
	printRequests(a.out, requests.Data, requests.Source)
	return nil
}

// Reset wipes the locally stored records. Remote data is not affected.
func (a *App) Reset(ctx context.Context) error {
	confirm, err := getSimpleText(a.reader, "Delete all locally stored donors and requests? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "error clearing local store", "err", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.log.Info(ctx, "local store cleared")
	fmt.Fprintln(a.out, "Local data cleared")
	return nil
}

func sourceLabel(s models.Source) string {
	if s == models.SourceLocal {
		return "local"
	}
	return "server"
}

func printDonors(w io.Writer, donors []models.Donor, src models.Source) {
	fmt.Fprintf(w, "Donors (%d, from %s)\n", len(donors), sourceLabel(src))
	if len(donors) == 0 {
		fmt.Fprintln(w, "  no donors found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tGROUP\tPHONE\tLOCATION\tLAST DONATION\tSTATUS")
	for _, d := range donors {
		last := d.LastDonationDate
		if last == "" {
			last = "-"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n", d.ID, d.FullName, d.BloodGroup, d.Phone, d.Location, last, d.Status)
	}
	_ = tw.Flush()
}

func printRequests(w io.Writer, requests []models.BloodRequest, src models.Source) {
	fmt.Fprintf(w, "Requests (%d, from %s)\n", len(requests), sourceLabel(src))
	if len(requests) == 0 {
		fmt.Fprintln(w, "  no requests found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tPATIENT\tGROUP\tUNITS\tHOSPITAL\tURGENCY\tSTATUS\tREQUESTED")
	for _, r := range requests {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n", r.ID, r.PatientName, r.BloodGroup, r.Units, r.Hospital, r.Urgency, r.Status, r.RequestedDate)
	}
	_ = tw.Flush()
}

func printStats(w io.Writer, s models.Stats) {
	fmt.Fprintf(w, "Total donors:         %d (%s)\n", s.TotalDonors, sourceLabel(s.DonorsSource))
	fmt.Fprintf(w, "Pending requests:     %d (%s)\n", s.PendingRequests, sourceLabel(s.RequestsSource))
	fmt.Fprintf(w, "Successful donations: %d\n", s.SuccessfulDonations)
}
