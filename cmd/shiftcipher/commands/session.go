/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: session.go
Description: Per-invocation state shared by the commands: configuration, logger,
the message being processed, the output sink and the optional run report.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/shiftcipher/pkg/logging"
	"github.com/kleascm/shiftcipher/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type session struct {
	operation string
	cmd       *cobra.Command
	v         *viper.Viper
	logger    *logging.Logger
	message   string
	report    *report.Report
}

// newSession loads configuration, sets up logging and reads the message
func newSession(cmd *cobra.Command, v *viper.Viper, operation string) (*session, error) {
	if err := LoadConfig(v); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging(v, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	message, err := readMessage(cmd, v, logger)
	if err != nil {
		logger.Close()
		return nil, err
	}

	s := &session{
		operation: operation,
		cmd:       cmd,
		v:         v,
		logger:    logger,
		message:   message,
		report:    report.New(operation, message),
	}
	logger.Debug("Session started", map[string]interface{}{
		"operation": operation,
		"run_id":    s.report.RunID,
	})
	return s, nil
}

// emit writes one result line to the output sink
func (s *session) emit(line string) error {
	s.report.AddOutput(line)
	if _, err := fmt.Fprintln(s.cmd.OutOrStdout(), line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// close writes the run report when a report directory is configured
func (s *session) close() error {
	defer s.logger.Close()

	dir := s.v.GetString("report_dir")
	if dir == "" {
		return nil
	}
	path, err := report.Write(dir, s.report)
	if err != nil {
		return err
	}
	s.logger.Info("Report written", map[string]interface{}{
		"operation": s.operation,
		"path":      path,
		"run_id":    s.report.RunID,
	})
	return nil
}

// finish closes the session and returns err, or the close error when err is nil
func (s *session) finish(err error) error {
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}
