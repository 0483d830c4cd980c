package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourlab/internal/render"
	"github.com/katalvlaran/tourlab/matrix"
	"github.com/katalvlaran/tourlab/tsp"
)

func newInspectCmd() *cobra.Command {
	var dot string

	cmd := &cobra.Command{
		Use:   "inspect <costs-file>",
		Short: "Report instance statistics and the greedy baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			costs, err := matrix.ParseFile(args[0])
			if err != nil {
				return err
			}
			model, err := tsp.NewCostModel(costs)
			if err != nil {
				return err
			}
			greedy, err := tsp.GreedyTour(costs)
			if err != nil {
				return err
			}
			greedyCost := model.TourCost(greedy)

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(args[0]))
			fmt.Fprintln(w, keyValue("nodes", strconv.Itoa(costs.Nodes())))
			fmt.Fprintln(w, keyValue("edges", strconv.Itoa(costs.Len())))
			fmt.Fprintln(w, keyValue("moves", strconv.Itoa(tsp.MoveCount(costs.Nodes()))))
			fmt.Fprintln(w, keyValue("min edge", strconv.FormatInt(costs.Min(), 10)))
			fmt.Fprintln(w, keyValue("max edge", strconv.FormatInt(costs.Max(), 10)))
			fmt.Fprintln(w, keyValue("cost range", strconv.FormatInt(costs.Range(), 10)))
			fmt.Fprintln(w, keyValue("greedy cost", strconv.FormatInt(greedyCost, 10)))
			fmt.Fprintln(w, keyValue("greedy tour", greedy.String()))

			if dot != "" {
				text := render.ToDOT(model, greedy, render.Options{
					Title: fmt.Sprintf("greedy cost %d", greedyCost),
					Costs: true,
				})
				if err = os.WriteFile(dot, []byte(text), 0o644); err != nil {
					return fmt.Errorf("write DOT: %w", err)
				}
				logger.Debug("wrote DOT", "path", dot)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&dot, "dot", "", "write the greedy tour as Graphviz DOT")

	return cmd
}
