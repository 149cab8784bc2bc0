// Command gamehub is the operational CLI for the game catalog: it imports games
// from the external catalog and runs the translation pipeline outside the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"gamehub-app/config"
	"gamehub-app/database"
	gamesapi "gamehub-app/internal/api/games"
	"gamehub-app/internal/catalog"
	"gamehub-app/internal/domain/games"
	"gamehub-app/internal/localize"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gamehub",
		Short: "Catalog import and translation tooling",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			database.InitDB()
		},
	}

	root.AddCommand(newImportCmd())
	root.AddCommand(newTranslateCmd())
	return root
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <search term>",
		Short: "Import games matching a search term from the external catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := catalog.LoadCredentials(config.TWITCH_CREDENTIALS_FILE)
			if err != nil {
				return fmt.Errorf("load catalog credentials: %w", err)
			}
			fetcher := catalog.NewClient(creds, catalog.NewMemoryCache())

			translator := localize.NewDeepLTranslator(config.DEEPL_API_KEY, config.DEEPL_API_URL)
			pipeline := localize.NewPipeline(database.DB, translator)

			message, err := gamesapi.ResolveSearch(cmd.Context(), database.DB, fetcher, pipeline, args[0])
			if err != nil {
				return err
			}
			if message != nil {
				fmt.Println(*message)
			} else {
				fmt.Println("Search already matches local games, nothing imported.")
			}
			return nil
		},
	}
	return cmd
}

func newTranslateCmd() *cobra.Command {
	var (
		gameID uint
		slug   string
		all    bool
		lang   string
		mode   string
	)

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Run the translation pipeline for one game or the whole catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := targetGameIDs(gameID, slug, all)
			if err != nil {
				return err
			}

			translator := localize.NewDeepLTranslator(config.DEEPL_API_KEY, config.DEEPL_API_URL)
			pipeline := localize.NewPipeline(database.DB, translator)
			dispatcher := localize.NewDispatcher(pipeline, localize.Mode(mode), len(ids))
			dispatcher.Start(context.Background())

			failed := 0
			for _, id := range ids {
				if err := dispatcher.Dispatch(cmd.Context(), id, lang); err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "game %d: %v\n", id, err)
				}
			}
			dispatcher.Close()

			fmt.Printf("Processed %d game(s), %d failed.\n", len(ids), failed)
			if failed > 0 {
				return fmt.Errorf("%d game(s) failed to translate", failed)
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&gameID, "id", 0, "Translate a single game by id")
	cmd.Flags().StringVar(&slug, "slug", "", "Translate a single game by slug")
	cmd.Flags().BoolVar(&all, "all", false, "Translate the whole catalog")
	cmd.Flags().StringVar(&lang, "lang", localize.DefaultLang, "Target language")
	cmd.Flags().StringVar(&mode, "mode", string(localize.ModeSync), "Execution mode: sync or queue")
	return cmd
}

func targetGameIDs(gameID uint, slug string, all bool) ([]uint, error) {
	switch {
	case all:
		var ids []uint
		if err := database.DB.Model(&games.Game{}).Order("id").Pluck("id", &ids).Error; err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("the catalog is empty, import games first")
		}
		return ids, nil

	case slug != "":
		var game games.Game
		if err := database.DB.Where("slug = ?", slug).First(&game).Error; err != nil {
			return nil, fmt.Errorf("no game with slug %q", slug)
		}
		return []uint{game.ID}, nil

	case gameID != 0:
		var game games.Game
		if err := database.DB.First(&game, gameID).Error; err != nil {
			return nil, fmt.Errorf("no game with id %d", gameID)
		}
		return []uint{game.ID}, nil

	default:
		return nil, fmt.Errorf("one of --id, --slug or --all is required")
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
