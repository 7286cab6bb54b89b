package render

import (
	"fmt"
	"strconv"
	"strings"

	"chuni-tracker/internal/assets"
	"chuni-tracker/internal/domain"
)

// Field is one named entry of a display payload.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// DisplayPayload is the self-contained message built from one play
// record or song, shaped to drop straight into a chat embed.
type DisplayPayload struct {
	Title        string  `json:"title"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Fields       []Field `json:"fields"`
}

type Renderer struct {
	assets *assets.Client
}

func NewRenderer(assets *assets.Client) *Renderer {
	return &Renderer{assets: assets}
}

// Render maps one play record to its display payload. Field order is
// fixed: Artist, Played by (only when the record carries a username),
// Difficulty, Score, Grade, Max Combo, Judgement.
func (r *Renderer) Render(rec domain.PlayRecord) DisplayPayload {
	title := rec.Title
	if rec.IsNewRecord {
		title = "[NEW] " + rec.Title
	}

	payload := DisplayPayload{Title: title}
	if rec.JacketPath != nil {
		url := r.assets.JacketURL(*rec.JacketPath)
		payload.ThumbnailURL = &url
	}

	payload.Fields = append(payload.Fields, Field{Name: "Artist", Value: rec.Artist, Inline: true})
	if rec.Username != "" {
		payload.Fields = append(payload.Fields, Field{Name: "Played by", Value: rec.Username, Inline: true})
	}
	payload.Fields = append(payload.Fields,
		Field{
			Name:   "Difficulty",
			Value:  fmt.Sprintf("%s (Level %d)", domain.Difficulty(rec.ChartID).Label(), rec.Level),
			Inline: true,
		},
		Field{Name: "Score", Value: strconv.Itoa(rec.Score), Inline: true},
		Field{Name: "Grade", Value: domain.Grade(rec.Score), Inline: true},
		Field{Name: "Max Combo", Value: strconv.Itoa(rec.MaxCombo), Inline: true},
		Field{
			Name: "Judgement",
			Value: fmt.Sprintf(
				"**Justice Critical**: %d\n**Justice**: %d\n**Attack**: %d\n**Miss**: %d",
				rec.CriticalJustice(), rec.JudgeJustice, rec.JudgeAttack, rec.JudgeGuilty,
			),
			Inline: true,
		},
	)

	return payload
}

// RenderBatch renders every record in input order, one payload each.
func (r *Renderer) RenderBatch(records []domain.PlayRecord) []DisplayPayload {
	payloads := make([]DisplayPayload, len(records))
	for i, rec := range records {
		payloads[i] = r.Render(rec)
	}
	return payloads
}

// RenderSong aggregates the difficulties of one song into a single
// payload: shared fields from the first chart plus one Difficulties
// block listing every chart's level.
func (r *Renderer) RenderSong(charts []domain.SongChart) DisplayPayload {
	first := charts[0]

	payload := DisplayPayload{Title: "Song Information: " + first.Title}
	if first.JacketPath != nil {
		url := r.assets.JacketURL(*first.JacketPath)
		payload.ThumbnailURL = &url
	}

	var difficulties strings.Builder
	for _, chart := range charts {
		fmt.Fprintf(&difficulties, "%s: Level %d\n", domain.Difficulty(chart.ChartID).Label(), chart.Level)
	}

	payload.Fields = append(payload.Fields,
		Field{Name: "Title", Value: first.Title, Inline: true},
		Field{Name: "Genre", Value: first.Genre, Inline: true},
		Field{Name: "Artist", Value: first.Artist, Inline: true},
		Field{Name: "Difficulties", Value: difficulties.String(), Inline: false},
	)

	return payload
}
