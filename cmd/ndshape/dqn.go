package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/ndshape/internal/dqn"
	"github.com/born-ml/ndshape/internal/serialization"
)

func newDQNCmd(a *app) *cobra.Command {
	var (
		input   []int
		outputs int
		save    string
	)

	cmd := &cobra.Command{
		Use:     "dqn",
		Short:   "Build the convolutional DQN topology and print a summary",
		Example: `  ndshape dqn --input 4,84,84 --outputs 6`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factory := dqn.NewFactoryStdConv(a.cfg.DQN, a.shapes, a.logger)
			net, err := factory.Build(input, outputs)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), net.Summary())

			if save != "" {
				entries := []serialization.Entry{{Name: "input", Descriptor: net.Input}}
				for _, l := range net.Layers {
					entries = append(entries, serialization.Entry{Name: l.Name + ".out", Descriptor: l.Output})
				}
				meta := map[string]string{"model": "dqn-std-conv"}
				if err := serialization.WriteFile(save, entries, meta); err != nil {
					return err
				}
				a.logger.Info("activation shapes saved", zap.String("path", save), zap.Int("entries", len(entries)))
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&input, "input", []int{4, 84, 84}, "input shape [channels,height,width]")
	cmd.Flags().IntVar(&outputs, "outputs", 4, "number of actions")
	cmd.Flags().StringVar(&save, "save-shapes", "", "write activation descriptors to a .bshp file")
	return cmd
}
