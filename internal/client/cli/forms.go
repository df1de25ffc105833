package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/bloodbank/internal/client/models"
)

// getSimpleText, getRequiredText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getRequiredText = GetRequiredText
	getPassword     = GetPassword
)

const lastDonationLayout = "2006-01-02"

// Register walks through the donor form and saves the donor. Location is
// stored as "district, division".
func (a *App) Register(ctx context.Context) error {
	in, err := a.inputDonor()
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	res, err := a.data.SaveDonor(ctx, in)
	if err != nil {
		a.log.Error(ctx, "error saving donor", "err", err)
		fmt.Fprintln(a.out, "Registration failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Registered donor %s (%s)%s\n", res.Data.FullName, res.Data.ID, sourceNote(res.Source))
	return nil
}

func (a *App) inputDonor() (models.DonorInput, error) {
	var in models.DonorInput

	name, err := getRequiredText(a.reader, "Full name", a.out)
	if err != nil {
		return in, err
	}
	phone, err := getRequiredText(a.reader, "Phone", a.out)
	if err != nil {
		return in, err
	}
	district, err := getRequiredText(a.reader, "District", a.out)
	if err != nil {
		return in, err
	}
	division, err := getRequiredText(a.reader, "Division", a.out)
	if err != nil {
		return in, err
	}
	group, err := GetChoice(a.reader, "Blood group", models.BloodGroups, "", models.ParseBloodGroup, a.out)
	if err != nil {
		return in, err
	}
	last, err := getSimpleText(a.reader, "Last donation date (YYYY-MM-DD, empty if never)", a.out)
	if err != nil {
		return in, err
	}
	if last != "" {
		if _, err := time.Parse(lastDonationLayout, last); err != nil {
			return in, fmt.Errorf("invalid last donation date %q: %w", last, err)
		}
	}

	in = models.DonorInput{
		FullName:         name,
		BloodGroup:       group,
		Phone:            phone,
		Location:         fmt.Sprintf("%s, %s", district, division),
		LastDonationDate: last,
	}
	return in, nil
}

// Request walks through the blood request form and saves the request.
func (a *App) Request(ctx context.Context) error {
	in, err := a.inputRequest()
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	res, err := a.data.SaveRequest(ctx, in)
	if err != nil {
		a.log.Error(ctx, "error saving request", "err", err)
		fmt.Fprintln(a.out, "Request failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Request %s received: %d unit(s) of %s for %s%s\n",
		res.Data.ID, res.Data.Units, res.Data.BloodGroup, res.Data.PatientName, sourceNote(res.Source))
	return nil
}

func (a *App) inputRequest() (models.RequestInput, error) {
	var in models.RequestInput

	patient, err := getRequiredText(a.reader, "Patient name", a.out)
	if err != nil {
		return in, err
	}
	group, err := GetChoice(a.reader, "Blood group", models.BloodGroups, "", models.ParseBloodGroup, a.out)
	if err != nil {
		return in, err
	}
	units, err := GetPositiveInt(a.reader, "Units", 1, a.out)
	if err != nil {
		return in, err
	}
	hospital, err := getRequiredText(a.reader, "Hospital", a.out)
	if err != nil {
		return in, err
	}
	urgency, err := GetChoice(a.reader, "Urgency", models.Urgencies, models.UrgencyUrgent, models.ParseUrgency, a.out)
	if err != nil {
		return in, err
	}

	in = models.RequestInput{
		PatientName: patient,
		BloodGroup:  group,
		Units:       units,
		Hospital:    strings.TrimSpace(hospital),
		Urgency:     urgency,
	}
	return in, nil
}

func sourceNote(s models.Source) string {
	if s == models.SourceLocal {
		return " [saved locally, API unavailable]"
	}
	return ""
}
