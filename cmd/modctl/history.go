package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moderation-backend/internal/app"
	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/article"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <article-id>",
		Short: "Show the event log of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			articleID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("article id: %w", err)
			}

			ctx, err := actorContext(cmd.Context())
			if err != nil {
				return err
			}

			return withServices(ctx, func(s *app.Services) error {
				events, err := s.Articles.ListEvents(ctx, article.ListEventsInput{
					ArticleID: &articleID,
					Limit:     limit,
				})
				if err != nil {
					return fmt.Errorf("listing events: %w", err)
				}
				printEvents(cmd, events)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", domain.DefaultPageSize, "Maximum number of events to display")

	return cmd
}

func newQueueCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "queue",
		Short: "List snapshots awaiting review, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := actorContext(cmd.Context())
			if err != nil {
				return err
			}

			return withServices(ctx, func(s *app.Services) error {
				snaps, err := s.Articles.PendingQueue(ctx, domain.Page{Limit: limit})
				if err != nil {
					return fmt.Errorf("listing queue: %w", err)
				}

				out := cmd.OutOrStdout()
				if len(snaps) == 0 {
					fmt.Fprintln(out, "Queue is empty.")
					return nil
				}
				for _, sn := range snaps {
					fmt.Fprintf(out, "%s  article %s  %q  submitted %s\n",
						sn.ID, sn.ArticleID, sn.Title, sn.CreatedAt.Format("2006-01-02 15:04:05"))
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", domain.DefaultPageSize, "Maximum number of snapshots to display")

	return cmd
}

func printEvents(cmd *cobra.Command, events []*domain.Event) {
	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No events found.")
		return
	}

	for _, e := range events {
		actor := "-"
		if e.ActorID != nil {
			actor = e.ActorID.String()
		}
		fmt.Fprintf(out, "%s  %-9s  actor %s", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Kind.Label(), actor)
		if e.SnapshotID != nil {
			fmt.Fprintf(out, "  snapshot %s", *e.SnapshotID)
		}
		if e.Annotation != nil {
			fmt.Fprintf(out, "  %q", *e.Annotation)
		}
		fmt.Fprintln(out)
	}
}
