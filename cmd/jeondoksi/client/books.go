package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/explore"
)

var (
	category   string
	pages      int
	categories bool
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search books by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			return runSearch(ctx, a, strings.Join(args, " "))
		})
	},
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse bestsellers by category",
	Long: `Browse the bestseller lists. Pages are appended until an empty page ends the list.

  explore
  explore --category 에세이 --pages 3
  explore --category 987`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runExplore)
	},
}

func init() {
	exploreCmd.Flags().StringVar(&category, "category", "0", "Category id or name")
	exploreCmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	exploreCmd.Flags().BoolVar(&categories, "categories", false, "List the categories")
}

func (a *app) exploreService() (explore.Service, error) {
	return explore.NewOrchestrator(&explore.Config{Client: a.api, Logger: a.logger})
}

func runSearch(ctx context.Context, a *app, query string) error {
	svc, err := a.exploreService()
	if err != nil {
		return err
	}

	out, err := svc.Search(ctx, &explore.SearchInput{Query: query})
	if err != nil {
		return a.fail("검색 실패", err, explore.MsgSearchFailed)
	}
	if !out.Searched {
		return nil
	}
	if len(out.Books) == 0 {
		a.info(explore.MsgNoResults, "")
		return nil
	}

	for _, b := range out.Books {
		a.printf("%s  %s\n", heading(b.Title), muted(b.Author))
		a.printf("  ISBN %s\n", b.ISBN)
	}
	a.printf("\n%s\n", muted("jeondoksi report write --isbn ISBN --title 제목 으로 독후감을 작성하세요."))
	return nil
}

func runExplore(ctx context.Context, a *app) error {
	if categories {
		for _, c := range entities.Categories {
			a.printf("%6d  %s\n", c.ID, c.Name)
		}
		return nil
	}

	id, err := categoryID(category)
	if err != nil {
		return err
	}

	svc, err := a.exploreService()
	if err != nil {
		return err
	}

	out, err := svc.Browse(ctx, &explore.BrowseInput{CategoryID: id})
	if err != nil {
		return a.fail("불러오기 실패", err, "베스트셀러를 불러오지 못했습니다.")
	}
	for i := 1; i < pages && out.HasMore; i++ {
		if out, err = svc.More(ctx); err != nil {
			return a.fail("불러오기 실패", err, "베스트셀러를 불러오지 못했습니다.")
		}
	}

	name, _ := entities.CategoryName(out.CategoryID)
	a.printf("%s\n\n", heading("베스트셀러 · "+name))
	for _, b := range out.Books {
		a.printf("%3d. %s  %s\n", b.BestRank, b.Title, muted(b.Author))
		a.printf("     %s · %s\n", muted(explore.ShortCategory(b.CategoryName)), muted(b.Link))
	}
	if !out.HasMore {
		a.printf("\n%s\n", muted(explore.MsgEndOfList))
	}
	return nil
}

// categoryID accepts a category id or its Korean name
func categoryID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		return id, nil
	}
	for _, c := range entities.Categories {
		if c.Name == s {
			return c.ID, nil
		}
	}
	return 0, errors.Client(errors.CodeInvalidArgument, explore.MsgUnknownCategory).WithMeta("category", s)
}
