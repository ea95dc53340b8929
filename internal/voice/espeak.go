package voice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
	"github.com/nguyentantai21042004/wazigov-narrator/pkg/executor"
)

// ErrNoSynthesizer is returned when the speech binary cannot be found
var ErrNoSynthesizer = errors.New("speech synthesizer not installed")

type espeakInventory struct {
	executor executor.Executor
	binary   string
}

// NewEspeakInventory lists voices by running `<binary> --voices`
func NewEspeakInventory(exec executor.Executor, binary string) Inventory {
	return &espeakInventory{
		executor: exec,
		binary:   binary,
	}
}

func (e *espeakInventory) ListVoices(ctx context.Context) ([]model.Voice, error) {
	if !e.executor.Available(e.binary) {
		return nil, fmt.Errorf("%s: %w", e.binary, ErrNoSynthesizer)
	}

	out, err := e.executor.Execute(ctx, e.binary, "--voices")
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}

	return parseVoiceTable(out), nil
}

// parseVoiceTable reads the espeak-ng voice listing:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  en-us           --/M      English_(America)  gmw/en-US            (en 10)
func parseVoiceTable(out string) []model.Voice {
	var voices []model.Voice
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}
		voices = append(voices, model.Voice{
			Locale: fields[1],
			Name:   strings.ReplaceAll(fields[3], "_", " "),
		})
	}
	return voices
}
