package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fsenergy/till/internal/admin"
	"github.com/fsenergy/till/internal/catalog"
	"github.com/fsenergy/till/internal/history"
	"github.com/fsenergy/till/internal/receipt"
	"github.com/fsenergy/till/internal/render"
)

// PosOptions holds flags for the pos command.
type PosOptions struct {
	*RootOptions
}

// NewPosCommand creates the pos command.
func NewPosCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PosOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pos",
		Short: "Run the interactive register",
		Long: `Run the interactive register loop.

Commands inside the loop:
  add <id>       add a catalog product to the sale
  qty <id> <n>   set the quantity of a line (clamped to at least 1)
  rm <id>        remove a line
  name <text>    set the customer name
  show           show the current tape
  print          finalize the sale, save it, and print the receipt
  history        list past receipts (prompts for the admin password)
  login          authenticate as admin
  logout         end the admin session
  quit           leave the register`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPos(opts, cmd)
		},
	}

	return cmd
}

func runPos(opts *PosOptions, cmd *cobra.Command) error {
	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	cat, err := cfg.LoadCatalog()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load catalog", err)
	}

	st, err := cfg.OpenStore()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history store", err)
	}
	defer st.Close()

	reg := newRegister(cat, st, admin.NewGate(cfg.AdminSecret), cfg.Business,
		receipt.NewDateGenerator(cfg.ReceiptPrefix), time.Now,
		cmd.OutOrStdout(), cmd.ErrOrStderr())

	return reg.run(cmd.InOrStdin())
}

// register is the interactive loop's state: the one live session, the
// gate, and the store. There is exactly one writer to all of them - the
// operator driving this loop.
type register struct {
	catalog *catalog.Catalog
	store   history.Store
	gate    *admin.Gate
	profile render.Profile
	session *receipt.Session
	now     func() time.Time

	out     io.Writer
	errw    io.Writer
	scanner *bufio.Scanner
}

func newRegister(cat *catalog.Catalog, st history.Store, gate *admin.Gate,
	profile render.Profile, gen receipt.Generator, now func() time.Time,
	out, errw io.Writer) *register {

	r := &register{
		catalog: cat,
		store:   st,
		gate:    gate,
		profile: profile,
		session: receipt.NewSession(gen),
		now:     now,
		out:     out,
		errw:    errw,
	}

	// Re-render the tape after every mutation so the operator always
	// sees the state they are editing.
	r.session.OnChange(func(snap receipt.Snapshot) {
		render.Session(r.out, r.profile, snap)
	})

	return r
}

func (r *register) run(in io.Reader) error {
	r.scanner = bufio.NewScanner(in)

	fmt.Fprintln(r.out, "till register - type 'help' for commands")
	render.Session(r.out, r.profile, r.session.Snapshot())

	for {
		fmt.Fprint(r.out, "> ")
		if !r.scanner.Scan() {
			return r.scanner.Err()
		}
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		r.dispatch(line)
	}
}

func (r *register) dispatch(line string) {
	fields := strings.Fields(line)

	switch fields[0] {
	case "add":
		if len(fields) != 2 {
			fmt.Fprintln(r.out, "usage: add <id>")
			return
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			fmt.Fprintln(r.out, "usage: add <id>")
			return
		}
		if _, ok := r.catalog.Lookup(id); !ok {
			fmt.Fprintf(r.out, "unknown product id %d\n", id)
			return
		}
		r.session.AddItemByID(id, r.catalog)

	case "qty":
		if len(fields) != 3 {
			fmt.Fprintln(r.out, "usage: qty <id> <n>")
			return
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			fmt.Fprintln(r.out, "usage: qty <id> <n>")
			return
		}
		// Invalid quantities are clamped, not rejected.
		q, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			q = 0
		}
		r.session.UpdateQuantity(id, q)

	case "rm":
		if len(fields) != 2 {
			fmt.Fprintln(r.out, "usage: rm <id>")
			return
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			fmt.Fprintln(r.out, "usage: rm <id>")
			return
		}
		r.session.RemoveItem(id)

	case "name":
		r.session.SetCustomerName(strings.TrimSpace(strings.TrimPrefix(line, "name")))

	case "show":
		render.Session(r.out, r.profile, r.session.Snapshot())

	case "print":
		r.print()

	case "history":
		r.history()

	case "login":
		if r.login() {
			fmt.Fprintln(r.out, "admin session started")
		}

	case "logout":
		r.gate.Logout()
		fmt.Fprintln(r.out, "admin session ended")

	case "help":
		fmt.Fprintln(r.out, "commands: add qty rm name show print history login logout quit")

	default:
		fmt.Fprintf(r.out, "unknown command %q - type 'help'\n", fields[0])
	}
}

// print commits the sale - finalize, append, reset - and only then
// hands the tape to the output writer. A failed append degrades to an
// unsaved but otherwise complete sale, never an aborted one.
func (r *register) print() {
	rec := r.session.Finalize(r.now())

	if err := r.store.Append(context.Background(), rec); err != nil {
		fmt.Fprintf(r.errw, "warning: receipt %s not durably saved: %v\n", rec.ID, err)
	}
	r.session.Reset()

	render.Receipt(r.out, r.profile, rec)
}

func (r *register) history() {
	if !r.gate.Authenticated() && !r.login() {
		return
	}

	receipts, err := r.store.Load(context.Background())
	if err != nil {
		fmt.Fprintf(r.errw, "warning: could not load history: %v\n", err)
		return
	}
	render.HistoryList(r.out, r.profile, receipts)
}

// login prompts for the admin password on the next input line.
// Failure prints the one generic message and leaves the gate unchanged.
func (r *register) login() bool {
	fmt.Fprint(r.out, "Password: ")
	if !r.scanner.Scan() {
		return false
	}
	if err := r.gate.Authenticate(r.scanner.Text()); err != nil {
		fmt.Fprintln(r.out, "authentication failed")
		return false
	}
	return true
}
