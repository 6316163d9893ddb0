/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Analyze command implementation. Prints the observed letter histogram
and every candidate key ranked by score, best first, so the choice made by
decrypt can be inspected.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/shiftcipher/pkg/analysis"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunAnalyze prints the frequency analysis of the message
func RunAnalyze(cmd *cobra.Command, v *viper.Viper, args []string) error {
	analyzer, err := newAnalyzer(v)
	if err != nil {
		return err
	}

	s, err := newSession(cmd, v, "analyze")
	if err != nil {
		return err
	}

	scores, hist, err := analyzer.Score(s.message)
	if err != nil {
		return s.finish(fmt.Errorf("frequency analysis failed: %w", err))
	}
	ranked := analysis.Rank(scores)

	s.report.Method = analyzer.Method()
	s.report.Candidates = ranked
	s.report.SetKey(ranked[0].Key, true)
	s.logger.LogKeyRecovery(ranked[0].Key, ranked[0].Score, hist.Letters, map[string]interface{}{
		"operation": "analyze",
		"method":    string(analyzer.Method()),
	})

	lines := []string{
		fmt.Sprintf("method: %s", analyzer.Method()),
		fmt.Sprintf("letters: %d", hist.Letters),
		fmt.Sprintf("histogram: %s", hist),
		fmt.Sprintf("%4s %4s %12s %12s", "rank", "key", "statistic", "score"),
	}
	for i, ks := range ranked {
		lines = append(lines, fmt.Sprintf("%4d %4d %12.6f %12.6f", i+1, ks.Key, ks.Statistic, ks.Score))
	}

	for _, line := range lines {
		if err := s.emit(line); err != nil {
			return s.finish(err)
		}
	}
	return s.finish(nil)
}
