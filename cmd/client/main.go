// cmd/client is the operator and user CLI, built with Cobra, talking to a
// node's HTTP gateway.
//
// Usage:
//
//	snctl auth register alice secret           --server http://localhost:8080
//	snctl auth login alice secret
//	snctl post create "hello ring"             --token <jwt>
//	snctl follow bob                           --token <jwt>
//	snctl feed                                 --token <jwt>
//	snctl kv put mykey "hello world"
//	snctl ring status
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ErnestoAbreu/distributed-social-network/internal/client"
)

var (
	serverAddr string
	token      string
	timeout    time.Duration
)

func newClient() *client.Client {
	c := client.New(serverAddr, timeout)
	if token != "" {
		c.SetToken(token)
	}
	return c
}

func main() {
	root := &cobra.Command{
		Use:   "snctl",
		Short: "CLI for the distributed social network",
	}

	root.PersistentFlags().StringVarP(&serverAddr, "server", "s",
		"http://localhost:8080", "Node gateway address")
	root.PersistentFlags().StringVar(&token, "token", "",
		"Bearer token from 'auth login'")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second,
		"HTTP request timeout")

	root.AddCommand(authCmd(), postCmd(), followCmd(), unfollowCmd(),
		followingCmd(), followersCmd(), feedCmd(), kvCmd(), ringCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ─── auth ─────────────────────────────────────────────────────────────────────

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Account management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "register <username> <password> [display name]",
		Short: "Create an account",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			display := ""
			if len(args) == 3 {
				display = args[2]
			}
			if err := newClient().Register(context.Background(), args[0], display, args[1]); err != nil {
				return err
			}
			fmt.Printf("registered %q\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and print a bearer token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := newClient().Login(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(tok)
			return nil
		},
	})

	return cmd
}

// ─── posts ────────────────────────────────────────────────────────────────────

func postCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Posting",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <content>",
		Short: "Publish a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().CreatePost(context.Background(), args[0])
			if err != nil {
				return err
			}
			prettyPrint(resp)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <post-id>",
		Short: "Fetch a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetPost(context.Background(), args[0])
			if err != nil {
				return err
			}
			prettyPrint(resp)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "repost <post-id>",
		Short: "Repost an existing post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Repost(context.Background(), args[0])
			if err != nil {
				return err
			}
			prettyPrint(resp)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list <username>",
		Short: "List a user's posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().UserPosts(context.Background(), args[0])
			if err != nil {
				return err
			}
			prettyPrint(resp)
			return nil
		},
	})

	return cmd
}

// ─── relations ────────────────────────────────────────────────────────────────

func followCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <username>",
		Short: "Follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().Follow(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("following %q\n", args[0])
			return nil
		},
	}
}

func unfollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <username>",
		Short: "Unfollow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().Unfollow(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("unfollowed %q\n", args[0])
			return nil
		},
	}
}

func followingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "following <username>",
		Short: "List who a user follows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Following(context.Background(), args[0])
			if err != nil {
				return err
			}
			prettyPrint(resp)
			return nil
		},
	}
}

func followersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "followers <username>",
		Short: "List a user's followers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Followers(context.Background(), args[0])
			if err != nil {
				return err
			}
			prettyPrint(resp)
			return nil
		},
	}
}

func feedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Show the posts of everyone you follow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Feed(context.Background())
			if err != nil {
				return err
			}
			prettyPrint(resp)
			return nil
		},
	}
}

// ─── kv ───────────────────────────────────────────────────────────────────────

func kvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Raw key-value operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Retrieve a value by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := newClient().KVGet(context.Background(), args[0])
			if err == client.ErrNotFound {
				fmt.Printf("key %q not found\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "put <key> <value>",
		Short: "Store a key-value pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().KVPut(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("saved %q\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().KVDelete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %q\n", args[0])
			return nil
		},
	})

	return cmd
}

// ─── ring ─────────────────────────────────────────────────────────────────────

func ringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring",
		Short: "Ring introspection",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the node's ring position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().RingStatus(context.Background())
			if err != nil {
				return err
			}
			prettyPrint(resp)
			return nil
		},
	})

	return cmd
}

// ─── helpers ──────────────────────────────────────────────────────────────────

func prettyPrint(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(data))
}
