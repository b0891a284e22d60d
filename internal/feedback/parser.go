package feedback

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse converts raw coach-feedback text into a typed structure, or nil when
// the text does not represent usable structured feedback. It never fails:
// malformed YAML, wrong shapes, and semantically empty input all collapse to
// a nil result, so callers can fall back to rendering the text as prose.
//
// Unknown keys are ignored at every level. Malformed entries are dropped
// individually and do not invalidate their siblings.
func Parse(raw string) *StructuredCoachFeedback {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	// The intermediate representation is deliberately untyped: a generic
	// key/value tree that gets shape-checked field by field below. Feedback
	// text is authored by humans and LLMs, so anything can show up.
	var root map[string]any
	if err := yaml.Unmarshal([]byte(raw), &root); err != nil {
		return nil
	}

	fb := &StructuredCoachFeedback{
		GymfloorActies:   parseGymfloorActies(root["gymfloor_acties"]),
		AnalyseEnContext: parseAnalyseEnContext(root["analyse_en_context"]),
		MotivatieBoost:   parseMotivatieBoost(root["motivatie_boost"]),
	}

	// An empty object would be indistinguishable from a sparse-but-real one;
	// nil is the uniform "nothing parsed" signal.
	if len(fb.GymfloorActies) == 0 && len(fb.AnalyseEnContext) == 0 && fb.MotivatieBoost == nil {
		return nil
	}
	return fb
}

func parseGymfloorActies(v any) []GymfloorAction {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	var actions []GymfloorAction
	for _, item := range seq {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		actie := coerceString(entry["actie"])
		if actie == "" {
			continue
		}
		actions = append(actions, GymfloorAction{Actie: actie})
	}
	return actions
}

func parseAnalyseEnContext(v any) []ExerciseFeedback {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	var entries []ExerciseFeedback
	for _, item := range seq {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ef := ExerciseFeedback{
			Oefening:                    coerceString(entry["oefening"]),
			Stimulus:                    coerceString(entry["stimulus"]),
			SetDegradatieEnVermoeidheid: coerceString(entry["set_degradatie_en_vermoeidheid"]),
			ProgressieTovVorige:         coerceString(entry["progressie_tov_vorige"]),
			CoachCueVolgendeSessie:      cleanCue(coerceString(entry["coach_cue_volgende_sessie"])),
			AanpakVolgendeSessie:        coerceString(entry["aanpak_volgende_sessie"]),
		}
		// An entry without an exercise name has nothing to attach to.
		if ef.Oefening == "" {
			continue
		}
		entries = append(entries, ef)
	}
	return entries
}

func parseMotivatieBoost(v any) *MotivatieBoost {
	entry, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	mb := MotivatieBoost{
		Stijl: coerceString(entry["stijl"]),
		Tekst: coerceString(entry["tekst"]),
	}
	// Both fields or nothing — a half-filled blurb is dropped whole.
	if mb.Stijl == "" || mb.Tekst == "" {
		return nil
	}
	return &mb
}

// cleanCue removes serialization artifacts from a coach cue: escaped quotes
// are unescaped, then a single leading/trailing literal quote is stripped.
// `"\"Drive through heels\""` ends up as `Drive through heels`.
func cleanCue(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

// coerceString renders scalars as text and collapses everything else to "".
// Strings pass through; numbers and booleans get their standard text form;
// maps, sequences, and null coerce to the empty string, which the callers
// treat as "absent".
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
