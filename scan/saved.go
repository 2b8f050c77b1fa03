package scan

import (
	"context"
	"fmt"
)

// SavePositions stores the current position of every axis for a later RestoreSaved.
// If a position cannot be read, any earlier snapshot is discarded so RestoreSaved does not
// move the axes to stale positions.
func (s *Scan) SavePositions() error {
	s.saved = nil
	s.hasSaved = false

	positions, err := s.Positions()
	if err != nil {
		return fmt.Errorf("save positions: %w", err)
	}
	s.saved = positions
	s.hasSaved = true
	s.logger.Debug("saved axis positions", "positions", positionStrings(positions))

	return nil
}

// RestoreSaved moves every axis back to the positions stored by the last SavePositions
// and waits until they arrive. It does nothing if no positions were saved.
func (s *Scan) RestoreSaved(ctx context.Context) error {
	if !s.hasSaved {
		s.logger.Debug("no saved axis positions to restore")
		return nil
	}

	if err := s.move(s.saved); err != nil {
		return fmt.Errorf("restore positions: %w", err)
	}
	if err := s.Wait(ctx); err != nil {
		return fmt.Errorf("restore positions: %w", err)
	}
	s.logger.Debug("restored axis positions", "positions", positionStrings(s.saved))

	return nil
}
