package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// All interactive input happens here, at the command boundary. The
// internal packages receive answers as parameters or closures and never
// block on stdin themselves.

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

func confirm(prompt string) bool {
	answer := strings.ToLower(readLine(prompt + " (y/n): "))
	return answer == "y" || answer == "yes" || answer == "s"
}

// readHashes collects revision ids one per line until a blank line.
func readHashes() []string {
	fmt.Println("Enter commit hashes (one per line). Press Enter on an empty line to finish.")
	var hashes []string
	for {
		h := readLine("Commit hash: ")
		if h == "" {
			break
		}
		hashes = append(hashes, h)
	}
	return hashes
}
