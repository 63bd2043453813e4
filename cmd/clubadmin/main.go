package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"syscall"

	"golang.org/x/term"

	"clubsync/internal/club"
	"clubsync/internal/config"
	"clubsync/internal/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help requested")
)

type commandLine struct {
	cfg  config.App
	sess *session.Session
	data *club.Store
}

func main() {
	cfg := config.Load()
	sess := session.New(cfg.BaseURL, cfg.AuthHeader, cfg.RequestTimeout, tokenStore(cfg))

	cli := &commandLine{
		cfg:  cfg,
		sess: sess,
		data: club.NewStore(sess.Client()),
	}
	if err := cli.run(context.Background(), os.Args); err != nil {
		if errors.Is(err, errHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func tokenStore(cfg config.App) session.TokenStore {
	switch cfg.TokenBackend {
	case "memory":
		return session.NewMemoryStore()
	case "redis":
		return session.NewRedisStore(cfg.RedisAddr, cfg.RedisKey)
	default:
		return session.NewFileStore(cfg.TokenPath)
	}
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  clubadmin login -email EMAIL        - sign in (password prompted)")
	fmt.Println("  clubadmin logout                    - discard the stored credential")
	fmt.Println("  clubadmin whoami                    - show the authenticated user")
	fmt.Println("  clubadmin load                      - fetch all resources, print a summary")
	fmt.Println("  clubadmin list RESOURCE             - print a resource collection")
	fmt.Println("  clubadmin get RESOURCE ID           - fetch one record by id")
	fmt.Println("  clubadmin rm RESOURCE ID            - delete one record")
	fmt.Println("  clubadmin rm-all RESOURCE           - delete a whole collection")
	fmt.Println()
	fmt.Println("Resources: events, results, team, professors, students, announcements")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
		email := loginCmd.String("email", "", "The admin email. The password will be prompted next.")
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *email == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return err
		}
		return cli.login(ctx, *email, string(pwd))
	case "logout":
		cli.sess.Logout()
		fmt.Println("signed out")
		return nil
	case "whoami":
		user, err := cli.sess.Me(ctx)
		if err != nil {
			return err
		}
		return dumpJSON(user)
	case "load":
		return cli.load(ctx)
	case "list":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.list(ctx, args[2])
	case "get":
		if len(args) < 4 {
			cli.printUsage()
			return errHelp
		}
		return cli.get(ctx, args[2], args[3])
	case "rm":
		if len(args) < 4 {
			cli.printUsage()
			return errHelp
		}
		return cli.remove(ctx, args[2], args[3])
	case "rm-all":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.removeAll(ctx, args[2])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, email, password string) error {
	user, err := cli.sess.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (cli *commandLine) load(ctx context.Context) error {
	report := cli.data.Load(ctx)
	counts := map[string]int{
		"events":        cli.data.Events().Len(),
		"results":       cli.data.Results().Len(),
		"team":          cli.data.Team().Len(),
		"professors":    cli.data.Professors().Len(),
		"students":      cli.data.Students().Len(),
		"announcements": cli.data.Announcements().Len(),
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-15s %d\n", name, counts[name])
	}
	return report.Err()
}

func (cli *commandLine) list(ctx context.Context, resource string) error {
	if err := cli.data.Load(ctx).Err(); err != nil {
		return err
	}
	switch resource {
	case "events":
		return dumpJSON(cli.data.Events().All())
	case "results":
		return dumpJSON(cli.data.Results().All())
	case "team":
		return dumpJSON(cli.data.Team().All())
	case "professors":
		return dumpJSON(cli.data.Professors().All())
	case "students":
		return dumpJSON(cli.data.Students().All())
	case "announcements":
		return dumpJSON(cli.data.Announcements().All())
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
}

func (cli *commandLine) get(ctx context.Context, resource, id string) error {
	switch resource {
	case "events":
		return dumpResult(cli.data.Events().GetByID(ctx, id))
	case "results":
		return dumpResult(cli.data.Results().GetByID(ctx, id))
	case "team":
		return dumpResult(cli.data.Team().GetByID(ctx, id))
	case "professors":
		return dumpResult(cli.data.Professors().GetByID(ctx, id))
	case "students":
		return dumpResult(cli.data.Students().GetByID(ctx, id))
	case "announcements":
		return dumpResult(cli.data.Announcements().GetByID(ctx, id))
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
}

func (cli *commandLine) remove(ctx context.Context, resource, id string) error {
	// deletions pre-check the cache, so populate it first
	if err := cli.data.Load(ctx).Err(); err != nil {
		return err
	}
	var err error
	switch resource {
	case "events":
		err = cli.data.Events().Remove(ctx, id)
	case "results":
		err = cli.data.Results().Remove(ctx, id)
	case "team":
		err = cli.data.Team().Remove(ctx, id)
	case "professors":
		err = cli.data.Professors().Remove(ctx, id)
	case "students":
		err = cli.data.Students().Remove(ctx, id)
	case "announcements":
		err = cli.data.Announcements().Remove(ctx, id)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	if err != nil {
		return err
	}
	fmt.Println("deleted", id)
	return nil
}

func (cli *commandLine) removeAll(ctx context.Context, resource string) error {
	var err error
	switch resource {
	case "events":
		err = cli.data.Events().RemoveAll(ctx)
	case "results":
		err = cli.data.Results().RemoveAll(ctx)
	case "team":
		err = cli.data.Team().RemoveAll(ctx)
	case "professors":
		err = cli.data.Professors().RemoveAll(ctx)
	case "students":
		err = cli.data.Students().RemoveAll(ctx)
	case "announcements":
		err = cli.data.Announcements().RemoveAll(ctx)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	if err != nil {
		return err
	}
	fmt.Println("deleted all", resource)
	return nil
}

func dumpResult[T any](v T, err error) error {
	if err != nil {
		return err
	}
	return dumpJSON(v)
}

func dumpJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
