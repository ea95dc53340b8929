package narration

import (
	"context"
	"errors"
	"strconv"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/pkg/executor"
)

type espeakSpeaker struct {
	executor executor.Executor
	binary   string
	rate     int
	logger   logger.Logger
}

// NewEspeakSpeaker creates a Speaker that plays utterances through espeak-ng
func NewEspeakSpeaker(exec executor.Executor, binary string, rate int, log logger.Logger) Speaker {
	return &espeakSpeaker{
		executor: exec,
		binary:   binary,
		rate:     rate,
		logger:   log,
	}
}

func (s *espeakSpeaker) Available() bool {
	return s.executor.Available(s.binary)
}

func (s *espeakSpeaker) Speak(ctx context.Context, u Utterance, done func(error)) error {
	args := s.args(u)
	s.logger.Debug(ctx, "Speaking %d chars: %s %v", len(u.Text), s.binary, args)

	go func() {
		// Text goes through stdin so content starting with "-" is never read as a flag
		_, err := s.executor.ExecuteWithInput(ctx, u.Text, s.binary, args...)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		done(err)
	}()

	return nil
}

func (s *espeakSpeaker) args(u Utterance) []string {
	// espeak-ng picks its own default variant when given a bare language tag
	voiceArg := u.Locale
	if u.Voice.Locale != "" {
		voiceArg = u.Voice.Locale
	}

	return []string{
		"-v", voiceArg,
		"-s", strconv.Itoa(s.rate),
		"--stdin",
	}
}
