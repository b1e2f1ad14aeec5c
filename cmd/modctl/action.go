package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moderation-backend/internal/app"
	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

func newActionCmd(op domain.EventKind) *cobra.Command {
	var annotation string

	cmd := &cobra.Command{
		Use:   strings.ToLower(op.String()) + " <article-id>",
		Short: op.Label() + " an article",
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

			input := moderation.ActionInput{ArticleID: articleID}
			if cmd.Flags().Changed("annotation") {
				input.Annotation = &annotation
			}

			return withServices(ctx, func(s *app.Services) error {
				result, err := s.Moderation.Apply(ctx, op, input)
				if err != nil {
					return fmt.Errorf("%s: %s: %w", strings.ToLower(op.Label()), domain.KindOf(err), err)
				}
				printResult(cmd, result)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&annotation, "annotation", "m", "", "Note recorded with the event")

	return cmd
}

func printResult(cmd *cobra.Command, r *moderation.ActionResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s ok: article %s is now %s\n", r.EventLabel, r.ArticleID, r.StatusLabel)
	fmt.Fprintf(out, "  event:    %s\n", r.EventID)
	if r.SnapshotID != nil {
		fmt.Fprintf(out, "  snapshot: %s\n", *r.SnapshotID)
	}
}
