package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/karupanerura/lazyload/flight"
	"github.com/karupanerura/lazyload/internal/iterutil"
	"github.com/karupanerura/lazyload/progressive"
	"github.com/karupanerura/lazyload/roomlist"
	"github.com/karupanerura/lazyload/source"
	"github.com/karupanerura/lazyload/source/mocksource"
	"github.com/karupanerura/lazyload/visibility"
)

func newHotelCmd(a *app) *cobra.Command {
	var (
		expand []string
		step   float64
	)

	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Scroll through a room list that loads prices on visibility",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			hotel := a.cfg.Hotel

			prices := &source.CountingPageSource[string, roomlist.Price]{
				Source: &source.LintPageSource[string, roomlist.Price]{
					Source:   &mocksource.Prices{InitialDelay: hotel.InitialDelay, RemainingDelay: hotel.MoreDelay},
					PageSize: hotel.PageSize,
				},
			}
			list := roomlist.New(
				&mocksource.Rooms{Count: hotel.Rooms, Delay: hotel.ListDelay},
				prices,
				roomlist.WithRoomOptions(
					flight.WithErrorHandler[roomlist.Room](a.errorHandler("failed to fetch rooms")),
				),
				roomlist.WithPriceOptions(
					progressive.WithPageSize[string, roomlist.Price](hotel.PageSize),
					progressive.WithErrorHandler[string, roomlist.Price](a.errorHandler("failed to fetch prices")),
				),
			)
			defer list.Dispose()

			if err := list.Load(ctx); err != nil {
				return fmt.Errorf("failed to load rooms: %w", err)
			}

			viewport := visibility.NewViewport(hotel.ViewportHeight)
			layout := roomlist.Layout{CardHeight: hotel.CardHeight, Gap: hotel.CardGap}
			list.Attach(viewport, layout)
			list.Wait()
			a.logger.Info().Int("initial_fetches", prices.InitialCalls()).Msg("first screen loaded")

			if len(expand) > 0 {
				p := pool.New().WithErrors().WithContext(ctx)
				for _, id := range expand {
					p.Go(func(ctx context.Context) error {
						_, err := list.Expand(ctx, id)
						return err
					})
				}
				if err := p.Wait(); err != nil {
					return fmt.Errorf("failed to expand: %w", err)
				}
			}

			bottom := layout.Region(len(list.Cards())).Top
			if step <= 0 {
				step = hotel.ViewportHeight / 2
			}
			for offset := step; offset < bottom; offset += step {
				viewport.ScrollTo(offset)
				list.Wait()
				a.logger.Debug().Float64("offset", offset).Int("initial_fetches", prices.InitialCalls()).Msg("scrolled")
			}

			printCards(out, list)
			fmt.Fprintf(out, "initial fetches: %d, remaining fetches: %d\n", prices.InitialCalls(), prices.RemainingCalls())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&expand, "expand", nil, "rooms whose full price list is shown")
	cmd.Flags().Float64Var(&step, "scroll-step", 0, "scroll distance per step (default: half the viewport)")
	return cmd
}

func printCards(w io.Writer, list *roomlist.List) {
	for _, card := range list.Cards() {
		state := card.Prices.State()
		offers := slices.Collect(iterutil.Map(slices.Values(state.Displayed), formatPrice))
		fmt.Fprintf(w, "%-8s %-32s %-16s %s\n", card.Room.ID, card.Room.Name, state.Phase, strings.Join(offers, ", "))
	}
}

func formatPrice(p roomlist.Price) string {
	return fmt.Sprintf("%s %s%d", p.ChannelID, p.Currency, p.Amount)
}
