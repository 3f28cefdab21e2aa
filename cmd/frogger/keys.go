package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Run: func(cmd *cobra.Command, args []string) {
		h := help.New()
		h.ShowAll = true
		fmt.Println(h.View(tui.DefaultKeyMap()))
	},
}
