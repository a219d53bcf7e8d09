package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// AgentConfig describes one computer player taking part in an experiment.
type AgentConfig struct {
	ID         int
	Strategy   string
	Depth      int
	MoveBudget int
	Seed       uint64
}

type GameRecord struct {
	ID     int
	Agents []int // AgentConfig.ID per seat
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Setup struct {
	Name      string          `json:"name"`
	MatchUps  [][]AgentConfig `json:"matchups"`
	NumGames  int             `json:"numGames"` // per matchup
	TurnLimit int             `json:"turnLimit"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Duration  time.Duration   `json:"duration"`
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	setup.Duration = setup.EndTime.Sub(setup.StartTime)

	setupPath := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(setupPath)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "depth", "move_budget", "seed"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.MoveBudget),
			strconv.FormatUint(config.Seed, 10),
		}
	}
	return w.write("agent_configs.csv", "agent config", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "game_id", "agents", "players", "starting_colour", "winners", "draw", "scores", "start_time", "end_time", "duration", "total_moves", "stalled"}
	rows := make([][]string, len(records))
	for i, record := range records {
		agents := make([]string, len(record.Agents))
		for j, id := range record.Agents {
			agents[j] = strconv.Itoa(id)
		}
		rows[i] = []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID,
			strings.Join(agents, "-"),
			strconv.Itoa(record.Players),
			record.StartingColour,
			record.Winners,
			strconv.FormatBool(record.Draw),
			record.Scores,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			record.Stalled,
		}
	}
	return w.write("game_records.csv", "game record", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "colour", "move", "strategy", "depth", "duration", "candidates", "nodes", "evaluations", "budget_exhausted"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Colour,
			record.Move,
			record.Strategy,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Evaluations),
			strconv.FormatBool(record.BudgetExhausted),
		}
	}
	return w.write("move_records.csv", "move record", header, rows)
}

func (w *Writer) write(file, kind string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", kind, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", kind, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", kind, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s file: %w", kind, err)
	}
	return nil
}
