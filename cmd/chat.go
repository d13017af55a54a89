package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsangels/aiengine/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat with Mowgli, the learning companion",
	Long:  "Send a single message, or start an interactive session when no message is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		ageGroup, _ := cmd.Flags().GetString("age-group")
		ageRange, _ := cmd.Flags().GetString("age-range")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		base := chat.Request{DisplayName: name, AgeGroupName: ageGroup, AgeRange: ageRange}

		if len(args) == 1 {
			req := base
			req.Message = args[0]
			fmt.Println(a.Chat.Respond(ctx, req).Message)
			return nil
		}

		// Interactive session. History feeds back into each request.
		var history []chat.Message
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("Chatting with Mowgli. Type 'quit' to exit.")
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				break
			}

			req := base
			req.Message = line
			req.History = history
			reply := a.Chat.Respond(ctx, req)
			fmt.Println(reply.Message)

			history = append(history,
				chat.Message{FromUser: true, Text: line},
				chat.Message{FromUser: false, Text: reply.Message},
			)
		}
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().String("name", "", "Display name to address the user by")
	chatCmd.Flags().String("age-group", "", "Age group name (e.g. \"Middle Group\")")
	chatCmd.Flags().String("age-range", "", "Age range controlling the reply tone (e.g. 8-10, 11-13)")
}
