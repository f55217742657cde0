package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/tetrimino/game"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Report struct {
	// Configuration
	Games      int
	Width      int
	Height     int
	MaxPieces  int
	Randomizer string
	Policy     string

	// Results
	TotalTime time.Duration
	GameTime  Stats
	Pieces    int
	Lines     int
	Clears    [game.MaxClear + 1]int
	ToppedOut int
	Best      int
	BestSeed  uint64
}

// Add folds one game into the totals.
func (r *Report) Add(result Result) {
	r.Pieces += result.Pieces
	r.Lines += result.Lines
	for rows, n := range result.Clears {
		r.Clears[rows] += n
	}
	if result.ToppedOut {
		r.ToppedOut++
	}
	if len(r.GameTime.Samples) == 0 || result.Lines > r.Best {
		r.Best = result.Lines
		r.BestSeed = result.Seed
	}
	r.GameTime.Samples = append(r.GameTime.Samples, result.Duration)
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetrimino Simulation Report

## Configuration
- **Games:** {{num .Games}}
- **Board:** {{.Width}}x{{.Height}}
- **Piece Limit:** {{num .MaxPieces}}
- **Randomizer:** {{.Randomizer}}
- **Policy:** {{.Policy}}

## Results
- **Pieces Locked:** {{num .Pieces}} ({{avg .Pieces .Games}} per game)
- **Lines Cleared:** {{num .Lines}} ({{avg .Lines .Games}} per game)
- **Topped Out:** {{num .ToppedOut}} of {{num .Games}}
- **Best Game:** {{num .Best}} lines (seed {{.BestSeed}})

| Rows | Clears |
|---|---|
| 1 | {{num (index .Clears 1)}} |
| 2 | {{num (index .Clears 2)}} |
| 3 | {{num (index .Clears 3)}} |
| 4 | {{num (index .Clears 4)}} |

## Timing
- **Total Time:** {{.TotalTime}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}
`

	p := message.NewPrinter(language.English)
	fm := template.FuncMap{
		"num": func(v int) string {
			return p.Sprintf("%d", v)
		},
		"avg": func(total, n int) string {
			if n == 0 {
				return "0"
			}
			return p.Sprintf("%.1f", float64(total)/float64(n))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
