package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/karupanerura/lazyload/flight"
	"github.com/karupanerura/lazyload/quiz"
	"github.com/karupanerura/lazyload/source/mocksource"
)

// quizReaders is the number of pages asking for the questions at once.
const quizReaders = 3

func newQuizCmd(a *app) *cobra.Command {
	var answers int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Prefetch the question set and answer some questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			src := &mocksource.Questions{Count: a.cfg.Quiz.Count, Delay: a.cfg.Quiz.Delay}
			store := quiz.NewStore(src,
				flight.WithErrorHandler[quiz.Question](a.errorHandler("failed to fetch questions")),
			)

			// the landing page warms the cache up
			store.Prefetch()
			a.logger.Debug().Int("count", src.Count).Dur("delay", src.Delay).Msg("prefetching questions")

			var eg errgroup.Group
			counts := make([]int, quizReaders)
			for i := range counts {
				eg.Go(func() error {
					questions, err := store.Questions(ctx)
					if err != nil {
						return err
					}
					counts[i] = len(questions)
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return fmt.Errorf("failed to load questions: %w", err)
			}

			state := store.State()
			a.logger.Info().Ints("counts", counts).Int("fetches", state.Fetches).Msg("questions loaded")
			fmt.Fprintf(out, "loaded %d questions with %d fetch(es)\n", counts[0], state.Fetches)

			session, err := store.Start(ctx)
			if err != nil {
				return err
			}
			for i := 0; i < answers; i++ {
				q := session.Current()
				value := q.Options[i%len(q.Options)].Value
				done, err := session.Answer(value)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "[%3.0f%%] %s -> %s\n", float64(q.Index)/float64(session.Len())*100, q.Title, value)
				if done {
					fmt.Fprintln(out, "finished")
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&answers, "answers", 3, "number of questions to answer")
	return cmd
}
