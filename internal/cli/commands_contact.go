package cli

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mekedron/cafe-menu/internal/contact"
	"github.com/mekedron/cafe-menu/internal/domain"
	"github.com/mekedron/cafe-menu/internal/service/branch"
	"github.com/mekedron/cafe-menu/internal/service/output"
)

type contactPayload struct {
	Name       string              `json:"name" yaml:"name"`
	Tagline    string              `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Address    string              `json:"address,omitempty" yaml:"address,omitempty"`
	Hours      string              `json:"hours,omitempty" yaml:"hours,omitempty"`
	Phones     []domain.PhoneEntry `json:"phones" yaml:"phones"`
	Email      string              `json:"email,omitempty" yaml:"email,omitempty"`
	Mailto     string              `json:"mailto,omitempty" yaml:"mailto,omitempty"`
	Telegram   string              `json:"telegram,omitempty" yaml:"telegram,omitempty"`
	Facebook   string              `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Directions string              `json:"directions" yaml:"directions"`
	MapEmbed   string              `json:"map_embed,omitempty" yaml:"map_embed,omitempty"`
	Branches   []string            `json:"branches" yaml:"branches"`
}

type branchPayload struct {
	Name    string              `json:"name" yaml:"name"`
	Address string              `json:"address,omitempty" yaml:"address,omitempty"`
	Hours   string              `json:"hours,omitempty" yaml:"hours,omitempty"`
	Phones  []domain.PhoneEntry `json:"phones" yaml:"phones"`
	Email   string              `json:"email,omitempty" yaml:"email,omitempty"`
	Mailto  string              `json:"mailto,omitempty" yaml:"mailto,omitempty"`
	Image   string              `json:"image,omitempty" yaml:"image,omitempty"`
	MapURL  string              `json:"map_url,omitempty" yaml:"map_url,omitempty"`
}

func newContactCommand(deps Dependencies) *cobra.Command {
	contactCmd := &cobra.Command{
		Use:   "contact",
		Short: "Show contact details, social links, and branch information.",
	}
	contactCmd.AddCommand(newContactShowCommand(deps))
	contactCmd.AddCommand(newContactBranchCommand(deps))
	return contactCmd
}

func newContactShowCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show phones, email, hours, social links, and map directions.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			vars, err := deps.Site.Variables(cmd.Context())
			if err != nil {
				return emitDataError(cmd, deps, cc, err)
			}
			payload := buildContactPayload(vars, deps.Settings.CountryCode)

			table := func() string {
				t := cc.translator
				rows := [][]string{
					{t.T("contact.address", "Address"), fallbackString(payload.Address, domain.MissingText)},
					{t.T("contact.hours", "Hours"), fallbackString(payload.Hours, domain.MissingText)},
				}
				for _, phone := range payload.Phones {
					rows = append(rows, []string{t.T("contact.phone", "Phone"), phone.Display + " (" + phone.Href + ")"})
				}
				rows = appendLinkRow(rows, t.T("contact.email", "Email"), payload.Email, payload.Mailto)
				rows = appendLinkRow(rows, "Telegram", payload.Telegram, "")
				rows = appendLinkRow(rows, "Facebook", payload.Facebook, "")
				rows = append(rows, []string{t.T("contact.get_directions", "Directions"), payload.Directions})
				rows = appendLinkRow(rows, "Map", payload.MapEmbed, "")
				if len(payload.Branches) > 0 {
					rows = append(rows, []string{t.T("contact.branch", "Branch"), strings.Join(payload.Branches, ", ")})
				}
				title := t.T("contact.title", "Get in touch")
				if payload.Name != "" {
					title += " · " + payload.Name
				}
				if payload.Tagline != "" {
					title += "\n" + payload.Tagline
				}
				return output.RenderTable(title, nil, rows)
			}
			return render(cmd, deps, cc, table, payload)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newContactBranchCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var name string

	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Show one branch with a maps link; defaults to the first branch.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			found, err := deps.Branches.Find(cmd.Context(), name)
			switch {
			case errors.Is(err, branch.ErrBranchNotFound), errors.Is(err, branch.ErrNoBranches):
				return emitError(cmd, deps, cc, "CAFE_BRANCH_NOT_FOUND", err.Error())
			case err != nil:
				return emitDataError(cmd, deps, cc, err)
			}
			payload := buildBranchPayload(found, deps.Settings.CountryCode)

			table := func() string {
				t := cc.translator
				rows := [][]string{
					{t.T("contact.address", "Address"), fallbackString(payload.Address, domain.MissingText)},
					{t.T("contact.hours", "Hours"), fallbackString(payload.Hours, domain.MissingText)},
				}
				rows = append(rows, lo.Map(payload.Phones, func(phone domain.PhoneEntry, _ int) []string {
					return []string{t.T("contact.phone", "Phone"), phone.Display + " (" + phone.Href + ")"}
				})...)
				rows = appendLinkRow(rows, t.T("contact.email", "Email"), payload.Email, payload.Mailto)
				rows = appendLinkRow(rows, t.T("contact.get_directions", "Directions"), payload.MapURL, "")
				return output.RenderTable(t.T("contact.branch", "Branch")+" · "+payload.Name, nil, rows)
			}
			return render(cmd, deps, cc, table, payload)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Branch name (case-insensitive).")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func buildContactPayload(vars domain.SiteVariables, countryCode string) contactPayload {
	c := vars.Contact
	payload := contactPayload{
		Name:     vars.Name,
		Tagline:  c.Tagline,
		Address:  c.Address,
		Hours:    c.Hours,
		Phones:   contact.ParsePhones(c.Phone, countryCode),
		Email:    c.Email,
		Branches: lo.Map(vars.Branches, func(b domain.Branch, _ int) string { return b.Name }),
	}
	payload.Mailto, _ = contact.MailtoHref(c.Email)
	payload.Telegram, _ = contact.TelegramHref(lo.CoalesceOrEmpty(c.Telegram, vars.Social.Telegram))
	payload.Facebook, _ = contact.TelegramHref(lo.CoalesceOrEmpty(c.Facebook, vars.Social.Facebook))
	payload.Directions = contact.DirectionsURL(lo.CoalesceOrEmpty(c.Map.DirectionsQuery, c.Address))
	payload.MapEmbed, _ = contact.SafeEmbedSrc(c.Map.EmbedURL)
	return payload
}

func buildBranchPayload(b domain.Branch, countryCode string) branchPayload {
	payload := branchPayload{
		Name:    b.Name,
		Address: b.Address,
		Hours:   b.Hours,
		Phones:  contact.ParsePhones(b.Phone, countryCode),
		Email:   b.Email,
		Image:   b.Image,
	}
	payload.Mailto, _ = contact.MailtoHref(b.Email)
	payload.MapURL, _ = contact.MapsSearchURL(b)
	return payload
}

func appendLinkRow(rows [][]string, label string, value string, href string) [][]string {
	if value == "" {
		return rows
	}
	if href != "" {
		value += " (" + href + ")"
	}
	return append(rows, []string{label, value})
}
