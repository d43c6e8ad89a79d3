package cli

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mekedron/cafe-menu/internal/gallery"
	"github.com/mekedron/cafe-menu/internal/service/output"
)

type slidePayload struct {
	Index int    `json:"index" yaml:"index"`
	Src   string `json:"src" yaml:"src"`
	Alt   string `json:"alt" yaml:"alt"`
	Quote string `json:"quote,omitempty" yaml:"quote,omitempty"`
}

func newGalleryCommand(deps Dependencies) *cobra.Command {
	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse gallery images.",
	}
	galleryCmd.AddCommand(newGalleryListCommand(deps))
	galleryCmd.AddCommand(newGalleryShowCommand(deps))
	return galleryCmd
}

func newGalleryListCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every gallery image.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			slides, err := deps.Site.Gallery(cmd.Context())
			if err != nil {
				return emitDataError(cmd, deps, cc, err)
			}
			rows := lo.Map(slides, func(slide gallery.Slide, i int) slidePayload {
				return toSlidePayload(slide, i)
			})

			table := func() string {
				title := cc.translator.T("gallery.title", "Gallery")
				if len(rows) == 0 {
					return title + "\n" + cc.translator.T("gallery.empty", "No images found.")
				}
				return output.RenderTable(title, []string{"#", "Alt", "Src", "Quote"}, lo.Map(rows, func(row slidePayload, _ int) []string {
					return []string{strconv.Itoa(row.Index + 1), row.Alt, row.Src, row.Quote}
				}))
			}
			return render(cmd, deps, cc, table, map[string]any{
				"count":  len(rows),
				"slides": rows,
			})
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newGalleryShowCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var index int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one slide and the slide that follows it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			slides, err := deps.Site.Gallery(cmd.Context())
			if err != nil {
				return emitDataError(cmd, deps, cc, err)
			}
			show := gallery.NewSlideshow(slides)
			show.GoTo(index - 1)
			current, ok := show.Current()
			if !ok {
				return emitError(cmd, deps, cc, "CAFE_GALLERY_EMPTY", cc.translator.T("gallery.empty", "No images found."))
			}
			upcoming, _ := show.Upcoming()
			payload := map[string]any{
				"count":    show.Len(),
				"current":  toSlidePayload(current, show.Index()),
				"upcoming": toSlidePayload(upcoming, (show.Index()+1)%show.Len()),
			}

			table := func() string {
				rows := [][]string{
					{"Slide", strconv.Itoa(show.Index()+1) + "/" + strconv.Itoa(show.Len())},
					{"Alt", current.Alt},
					{"Src", current.Src},
				}
				if current.Quote != "" {
					rows = append(rows, []string{"Quote", current.Quote})
				}
				rows = append(rows, []string{"Next", upcoming.Src})
				return output.RenderTable(cc.translator.T("gallery.title", "Gallery"), nil, rows)
			}
			return render(cmd, deps, cc, table, payload)
		},
	}

	cmd.Flags().IntVar(&index, "index", 1, "Slide number (1-based, wraps around).")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func toSlidePayload(slide gallery.Slide, index int) slidePayload {
	return slidePayload{
		Index: index,
		Src:   slide.Src,
		Alt:   slide.Alt,
		Quote: slide.Quote,
	}
}
