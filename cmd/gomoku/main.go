package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aslik04/gomoku/gomoku"
)

func main() {
	debug := flag.Bool("debug", false, "verbose engine logging")
	configDir := flag.String("config", ".", "directory to look for gomoku.yaml in")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	config, err := gomoku.LoadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad configuration: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		config.AiLogSearchStats = true
	}

	if err := run(bufio.NewScanner(os.Stdin), config); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in *bufio.Scanner, config gomoku.Config) error {
	fmt.Println("Gomoku — five in a row wins.")

	settings, err := promptSettings(in)
	if err != nil {
		return err
	}
	game, err := gomoku.NewGame(settings, config)
	if err != nil {
		return err
	}

	scores := map[gomoku.PlayerColor]int{}
	game.Start()
	for {
		if err := playOne(in, game); err != nil {
			return err
		}
		if winner, ok := game.Status().Winner(); ok {
			scores[winner]++
		}
		fmt.Printf("Score: X %d - O %d\n", scores[gomoku.PlayerBlack], scores[gomoku.PlayerWhite])
		again, err := promptYesNo(in, "Play again? [y/n] ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		// The other side opens the next round.
		game.Restart()
	}
}

func playOne(in *bufio.Scanner, game *gomoku.Game) error {
	for game.Status() == gomoku.StatusRunning {
		state := game.State()
		if game.CurrentPlayerIsHuman() {
			render(state)
			move, err := promptMove(in, state)
			if err != nil {
				return err
			}
			if err := game.SubmitHumanMove(move); err != nil {
				fmt.Printf("Illegal move: %v\n", err)
				continue
			}
		} else {
			move, err := game.PlayBotTurn()
			if err != nil {
				return err
			}
			fmt.Printf("%s (bot) plays %s\n", mark(state.ToMove), move)
		}
	}
	final := game.State()
	render(final)
	if winner, ok := final.Status.Winner(); ok {
		fmt.Printf("%s wins!\n", mark(winner))
	} else {
		fmt.Println("Draw — board is full.")
	}
	return nil
}

func promptSettings(in *bufio.Scanner) (gomoku.GameSettings, error) {
	settings := gomoku.DefaultGameSettings()

	size, err := promptInt(in, fmt.Sprintf("Board size [%d]: ", settings.BoardSize), settings.BoardSize, 5, 25)
	if err != nil {
		return settings, err
	}
	settings.BoardSize = size

	vsBot, err := promptYesNo(in, "Play against the computer? [y/n] ")
	if err != nil {
		return settings, err
	}
	if vsBot {
		settings.BlackType = gomoku.PlayerHuman
		settings.WhiteType = gomoku.PlayerBot
		level, err := promptInt(in, "Difficulty 1=easy 2=medium 3=hard [2]: ", 2, 1, 3)
		if err != nil {
			return settings, err
		}
		settings.WhiteDifficulty = gomoku.Difficulty(level)
	} else {
		settings.BlackType = gomoku.PlayerHuman
		settings.WhiteType = gomoku.PlayerHuman
	}
	return settings, settings.Validate()
}

func promptMove(in *bufio.Scanner, state gomoku.GameState) (gomoku.Move, error) {
	for {
		fmt.Printf("%s to move (x y): ", mark(state.ToMove))
		line, err := readLine(in)
		if err != nil {
			return gomoku.Move{}, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Println("Enter two numbers, e.g. \"7 7\".")
			continue
		}
		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			fmt.Println("Enter two numbers, e.g. \"7 7\".")
			continue
		}
		return gomoku.NewMove(x, y), nil
	}
}

func promptInt(in *bufio.Scanner, prompt string, fallback, lo, hi int) (int, error) {
	for {
		fmt.Print(prompt)
		line, err := readLine(in)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return fallback, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < lo || n > hi {
			fmt.Printf("Enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n, nil
	}
}

func promptYesNo(in *bufio.Scanner, prompt string) (bool, error) {
	for {
		fmt.Print(prompt)
		line, err := readLine(in)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Println("Please answer y or n.")
	}
}

func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(in.Text()), nil
}

func render(state gomoku.GameState) {
	size := state.Board.Size()
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < size; x++ {
		fmt.Fprintf(&sb, "%2d", x)
	}
	sb.WriteByte('\n')
	for y := 0; y < size; y++ {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < size; x++ {
			switch state.Board.At(x, y) {
			case gomoku.CellBlack:
				sb.WriteString(" X")
			case gomoku.CellWhite:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

func mark(player gomoku.PlayerColor) string {
	if player == gomoku.PlayerBlack {
		return "X"
	}
	return "O"
}
