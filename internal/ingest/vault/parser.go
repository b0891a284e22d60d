package vault

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftvault/internal/models"
)

var (
	// titleRe matches: # Push · Day 1 · Week 4
	titleRe = regexp.MustCompile(`^#\s+(.+)$`)

	// dateRe matches: date: 2026-02-17 17:04  (time part optional)
	dateRe = regexp.MustCompile(`^date:\s*(\d{4}-\d{2}-\d{2}(?:\s+\d{1,2}:\d{2})?)\s*$`)

	// durationRe matches: duration: 1:12 hr
	durationRe = regexp.MustCompile(`^duration:\s*(.+)$`)

	// exerciseHeaderRe matches: ## 1. Bench Press · Barbell
	exerciseHeaderRe = regexp.MustCompile(`^##\s+(\d+)\.\s+(.+?)(?:\s+·\s+(.+))?$`)

	// setRe matches: - 102,5 kg · 6 reps @ RIR 0  and  - WU 47,5 kg · 8 reps
	setRe = regexp.MustCompile(`^-\s+(WU\s+)?(\+?[\d.,]+)\s*kg\s+·\s+(\d+)\s+reps(?:\s+@\s*RIR\s*([\d.,]+))?$`)

	// feedbackHeaderRe matches the section holding the coach-feedback fence.
	feedbackHeaderRe = regexp.MustCompile(`^##\s+Coach Feedback\s*$`)
)

const feedbackFence = "```coach-feedback"

// Parse reads a vault session note and returns the session it describes.
// One note is one session. Lines that match nothing are treated as free
// notes before the first exercise and skipped after it.
func Parse(r io.Reader) (*models.Session, error) {
	scanner := bufio.NewScanner(r)
	session := &models.Session{}
	var current *models.Exercise
	var noteLines []string
	inFeedback := false
	var feedbackLines []string
	workingSets, warmupSets := 0, 0

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")

		// Inside the coach-feedback fence everything is captured verbatim
		// until the closing fence. The block is never interpreted here.
		if inFeedback {
			if strings.TrimSpace(line) == "```" {
				inFeedback = false
				continue
			}
			feedbackLines = append(feedbackLines, line)
			continue
		}
		if strings.TrimSpace(line) == feedbackFence {
			inFeedback = true
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if feedbackHeaderRe.MatchString(trimmed) {
			current = flushExercise(session, current)
			continue
		}

		if m := exerciseHeaderRe.FindStringSubmatch(trimmed); m != nil {
			current = flushExercise(session, current)
			position, _ := strconv.Atoi(m[1])
			current = &models.Exercise{
				Position:  position,
				Name:      strings.TrimSpace(m[2]),
				Equipment: strings.TrimSpace(m[3]),
			}
			workingSets, warmupSets = 0, 0
			continue
		}

		if m := setRe.FindStringSubmatch(trimmed); m != nil {
			if current == nil {
				return nil, fmt.Errorf("set line without exercise: %q", trimmed)
			}
			isWarmup := m[1] != ""
			weight, isBW := parseWeight(m[2])
			reps, _ := strconv.Atoi(m[3])
			rir := parseEuropeanFloat(m[4])

			var number int
			if isWarmup {
				warmupSets++
				number = warmupSets
			} else {
				workingSets++
				number = workingSets
			}
			current.Sets = append(current.Sets, models.Set{
				Number:           number,
				WeightKg:         weight,
				IsBodyweightPlus: isBW,
				Reps:             reps,
				RIR:              rir,
				IsWarmup:         isWarmup,
			})
			continue
		}

		if m := dateRe.FindStringSubmatch(trimmed); m != nil && session.Date.IsZero() {
			date, err := parseNoteDate(m[1])
			if err != nil {
				return nil, fmt.Errorf("parsing session date %q: %w", m[1], err)
			}
			session.Date = date
			continue
		}

		if m := durationRe.FindStringSubmatch(trimmed); m != nil && session.Duration == "" {
			session.Duration = strings.TrimSpace(m[1])
			continue
		}

		if m := titleRe.FindStringSubmatch(trimmed); m != nil && session.Name == "" {
			session.Name = strings.TrimSpace(m[1])
			continue
		}

		// Free text before the first exercise becomes the session notes.
		if current == nil && len(session.Exercises) == 0 {
			noteLines = append(noteLines, trimmed)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flushExercise(session, current)

	if session.Name == "" {
		return nil, fmt.Errorf("note has no session title")
	}
	if session.Date.IsZero() {
		return nil, fmt.Errorf("note has no date line")
	}

	session.Notes = strings.Join(noteLines, "\n")
	session.CoachFeedback = strings.Join(feedbackLines, "\n")
	return session, nil
}

func flushExercise(session *models.Session, current *models.Exercise) *models.Exercise {
	if current != nil {
		session.Exercises = append(session.Exercises, *current)
	}
	return nil
}

// parseNoteDate parses "2026-02-17 17:04" or "2026-02-17".
func parseNoteDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 3:04", "2006-01-02"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}

// parseWeight handles European decimals and bodyweight-plus notation.
// "+35" -> (35, true), "102,5" -> (102.5, false)
func parseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") {
		return parseEuropeanFloat(s[1:]), true
	}
	return parseEuropeanFloat(s), false
}

// parseEuropeanFloat converts a European decimal string to float64.
// "102,5" -> 102.5
func parseEuropeanFloat(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
