package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"SonicSavor/internal/client"
	"SonicSavor/internal/config"
	"SonicSavor/internal/entity"
	"SonicSavor/pkg/log"
	"github.com/joho/godotenv"
)

const usage = `usage: admin <command> [flags]

commands:
  login          -u username [-p password]
  logout
  orders
  set-status     <order id> <status>
  reservations
  upload         [-kind menu|guidelines] <file>
`

type command func(ctx context.Context, c *client.Client, args []string, out io.Writer) error

var commands = map[string]command{
	"login":        login,
	"logout":       logout,
	"orders":       listOrders,
	"set-status":   setStatus,
	"reservations": listReservations,
	"upload":       upload,
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	env, err := config.LoadDialogueEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c := client.New(env.BackendURL, log.NewDiscardLogger(),
		client.WithTokenStore(client.NewFileTokenStore(env.TokenFile)),
		client.WithTimeout(env.RemoteTimeout),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := cmd(ctx, c, os.Args[2:], os.Stdout); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Session expired or invalid. Run: admin login")
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func login(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("u", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := fs.String("p", "", "admin password, prompted when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		return errors.New("username is required")
	}
	if *password == "" {
		fmt.Fprint(out, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		*password = strings.TrimSpace(line)
	}

	if err := c.Login(ctx, *username, *password); err != nil {
		return err
	}
	fmt.Fprintln(out, "Logged in.")
	return nil
}

func logout(ctx context.Context, c *client.Client, _ []string, out io.Writer) error {
	if err := c.Logout(ctx); err != nil && !errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	fmt.Fprintln(out, "Logged out.")
	return nil
}

func listOrders(ctx context.Context, c *client.Client, _ []string, out io.Writer) error {
	orders, err := c.ListOrders(ctx)
	if err != nil {
		return err
	}
	writeOrders(out, orders)
	return nil
}

func writeOrders(out io.Writer, orders []entity.Order) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tPHONE\tITEMS\tQTY\tSTATUS\tPLACED")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			o.ID, o.CustomerName, o.PhoneNumber, o.Item, o.Quantity, o.Status, o.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func setStatus(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	if len(args) != 2 {
		return errors.New("usage: admin set-status <order id> <status>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id %q", args[0])
	}

	status := entity.OrderStatus(strings.ToLower(args[1]))
	if !status.Valid() {
		return fmt.Errorf("status must be one of %v", entity.OrderStatuses)
	}

	order, err := c.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Order #%d is now %s.\n", order.ID, order.Status)
	return nil
}

func listReservations(ctx context.Context, c *client.Client, _ []string, out io.Writer) error {
	reservations, err := c.ListReservations(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tCUSTOMER\tTIME\tPEOPLE")
	for _, r := range reservations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.Code, r.CustomerName, r.TimeSlot, r.People)
	}
	return w.Flush()
}

func upload(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	kind := fs.String("kind", string(entity.DocumentKindGuidelines), "menu or guidelines")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: admin upload [-kind menu|guidelines] <file>")
	}

	if !entity.DocumentKind(*kind).Valid() {
		return fmt.Errorf("invalid kind %q", *kind)
	}

	res, err := c.UploadDocument(ctx, fs.Arg(0), entity.DocumentKind(*kind))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Uploaded document %s (%d chunks).\n", res.DocumentID, res.Chunks)
	if res.Location != "" {
		fmt.Fprintf(out, "Stored at %s\n", res.Location)
	}
	return nil
}
