package main

import (
	"bufio"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tedmax100/lifo/stack"
)

func (a *app) reverseCmd() *cobra.Command {
	var truncate bool

	cmd := &cobra.Command{
		Use:   "reverse [items...]",
		Short: "Print items last to first, reading lines from stdin when no items are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stack.New[string](a.cfg.Options()...)
			if err != nil {
				return err
			}

			input := slices.Values(args)
			var scanner *bufio.Scanner
			if len(args) == 0 {
				scanner = bufio.NewScanner(cmd.InOrStdin())
				input = lines(scanner)
			}

			dropped := 0
			for item := range input {
				if dropped > 0 {
					dropped++
					continue
				}
				err := s.Push(item)
				switch {
				case errors.Is(err, stack.ErrIllegalState) && truncate:
					dropped++
				case err != nil:
					a.log.WithField("max_size", s.MaxSize()).Warn("stack is full")
					return err
				}
			}
			if scanner != nil {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			if dropped > 0 {
				a.log.WithFields(logrus.Fields{
					"max_size": s.MaxSize(),
					"dropped":  dropped,
				}).Warn("stack is full, input truncated")
			}

			a.log.WithFields(logrus.Fields{
				"items":    s.Len(),
				"capacity": s.Cap(),
			}).Debug("input pushed")

			out := cmd.OutOrStdout()
			for item := range s.PopAll() {
				if _, err := fmt.Fprintln(out, item); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&truncate, "truncate", false, "drop input past the max size instead of failing")
	return cmd
}

func lines(scanner *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}
