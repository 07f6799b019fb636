package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/search"
	"github.com/shuuden/shuuden/internal/station"
)

var (
	errNoOrigin       = errors.New("出発地を --from または --lat/--lng で指定してください")
	errSearchCanceled = errors.New("検索を中断しました")
	errNoResult       = errors.New("検索結果がありません")
)

func newSearchCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Rank ways home from a station or coordinate",
		Long: `Searches for ways home and prints them ranked by savings against a taxi
for the whole trip. Without --to the destination is the home station (荻窪駅).`,
		Example: `  shuuden search --from 新宿
  shuuden search --lat 35.6580 --lng 139.7016 --to 吉祥寺
  shuuden search --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interactive, _ := cmd.Flags().GetBool("interactive")
			asJSON, _ := cmd.Flags().GetBool("json")

			var (
				req search.Request
				err error
			)
			if interactive {
				req, err = pickRequest(opts.Stations)
			} else {
				req, err = requestFromFlags(cmd, opts.Stations)
			}
			if err != nil {
				return err
			}

			searcher, err := opts.NewSearcher()
			if err != nil {
				return fmt.Errorf("初期化に失敗しました: %w", err)
			}

			result, err := runSearch(cmd.Context(), searcher, req, opts.Spinner && !asJSON)
			if err != nil {
				if errors.Is(err, search.ErrInvalidCoordinates) || errors.Is(err, errSearchCanceled) {
					return err
				}
				return fmt.Errorf("検索中にエラーが発生しました: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(out(cmd))
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(models.NewSearchResult(result))
			}

			RenderResult(out(cmd), result)
			return nil
		},
	}

	cmd.Flags().StringP("from", "f", "", "Origin station name or keyword")
	cmd.Flags().Float64("lat", 0, "Origin latitude")
	cmd.Flags().Float64("lng", 0, "Origin longitude")
	cmd.Flags().StringP("to", "t", "", "Destination station name or keyword (default: home)")
	cmd.Flags().BoolP("interactive", "i", false, "Pick origin and destination stations from a list")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.MarkFlagsRequiredTogether("lat", "lng")
	cmd.MarkFlagsMutuallyExclusive("from", "lat")
	cmd.MarkFlagsMutuallyExclusive("interactive", "from")
	cmd.MarkFlagsMutuallyExclusive("interactive", "lat")

	return cmd
}

// runSearch runs the search in the background and waits for it, optionally
// behind a spinner. Interrupting the spinner or cancelling ctx abandons the
// search.
func runSearch(ctx context.Context, searcher Searcher, req search.Request, withSpinner bool) (*search.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := startSearch(ctx, searcher, req)

	if withSpinner {
		err := spinner.New().
			Title("終電後のルートを検索中...").
			Context(ctx).
			Action(func() { <-p.done }).
			Run()
		if err != nil {
			cancel()
			return nil, fmt.Errorf("%w: %w", errSearchCanceled, err)
		}
	}

	return p.wait(ctx)
}

// pendingSearch is a search running in its own goroutine. result and err are
// written before done is closed and must only be read after it.
type pendingSearch struct {
	done   chan struct{}
	result *search.Result
	err    error
}

func startSearch(ctx context.Context, searcher Searcher, req search.Request) *pendingSearch {
	p := &pendingSearch{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.result, p.err = searcher.Search(ctx, req)
	}()
	return p
}

// wait returns the outcome, or errSearchCanceled if ctx ends first.
func (p *pendingSearch) wait(ctx context.Context) (*search.Result, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errSearchCanceled, err)
	}

	if p.err != nil {
		return nil, p.err
	}
	if p.result == nil {
		return nil, errNoResult
	}
	return p.result, nil
}

// requestFromFlags resolves --from or --lat/--lng and the optional --to.
func requestFromFlags(cmd *cobra.Command, stations *station.Directory) (search.Request, error) {
	var req search.Request

	from, _ := cmd.Flags().GetString("from")
	switch {
	case from != "":
		s, err := lookupStation(stations, from)
		if err != nil {
			return req, err
		}
		req.OriginLat, req.OriginLng = s.Lat, s.Lng
	case cmd.Flags().Changed("lat"):
		req.OriginLat, _ = cmd.Flags().GetFloat64("lat")
		req.OriginLng, _ = cmd.Flags().GetFloat64("lng")
	default:
		return req, errNoOrigin
	}

	to, _ := cmd.Flags().GetString("to")
	if to != "" {
		s, err := lookupStation(stations, to)
		if err != nil {
			return req, err
		}
		setDestination(&req, s)
	}

	return req, nil
}

// lookupStation returns the best keyword match.
func lookupStation(stations *station.Directory, keyword string) (station.Station, error) {
	matches := stations.Search(keyword, 1)
	if len(matches) == 0 {
		return station.Station{}, fmt.Errorf("駅が見つかりません: %s", keyword)
	}
	return matches[0], nil
}

func setDestination(req *search.Request, s station.Station) {
	lat, lng, name := s.Lat, s.Lng, s.Name
	req.DestLat, req.DestLng, req.DestName = &lat, &lng, &name
}

// pickRequest asks for origin and destination stations with huh selects.
func pickRequest(stations *station.Directory) (search.Request, error) {
	var fromName, toName string

	options := stationOptions(stations.All())
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("どこにいますか？").
				Options(options...).
				Height(10).
				Value(&fromName),
			huh.NewSelect[string]().
				Title("どこへ帰りますか？").
				Options(options...).
				Height(10).
				Value(&toName),
		),
	).WithTheme(theme())

	if err := form.Run(); err != nil {
		return search.Request{}, err
	}

	return requestForStations(stations, fromName, toName)
}

// requestForStations builds a request between two stations picked by exact name.
func requestForStations(stations *station.Directory, fromName, toName string) (search.Request, error) {
	var req search.Request

	from, ok := stations.Find(fromName)
	if !ok {
		return req, fmt.Errorf("駅が見つかりません: %s", fromName)
	}
	req.OriginLat, req.OriginLng = from.Lat, from.Lng

	to, ok := stations.Find(toName)
	if !ok {
		return req, fmt.Errorf("駅が見つかりません: %s", toName)
	}
	setDestination(&req, to)

	return req, nil
}

func stationOptions(stations []station.Station) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(stations))
	for _, s := range stations {
		options = append(options, huh.NewOption(fmt.Sprintf("%s（%s）", s.Name, s.PrimaryLine()), s.Name))
	}
	return options
}
