// Package main is the entry point for the rpncalc calculator.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lemonberrylabs/rpncalc/pkg/api"
	"github.com/lemonberrylabs/rpncalc/pkg/batch"
	"github.com/lemonberrylabs/rpncalc/pkg/expr"
	"github.com/lemonberrylabs/rpncalc/pkg/repl"
	"github.com/lemonberrylabs/rpncalc/pkg/store"
	"github.com/lemonberrylabs/rpncalc/web"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rpncalc",
	Short: "Interactive arithmetic expression calculator",
	Long: `rpncalc evaluates arithmetic expressions with standard operator
precedence via a tokenize / shunting-yard / postfix pipeline. Without a
subcommand it starts an interactive session.`,
	RunE: runREPL,
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate expressions and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculator REST API and web UI",
	RunE:  runServe,
}

var batchCmd = &cobra.Command{
	Use:   "batch <suite.yaml>",
	Short: "Run a YAML suite of expressions",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("rpncalc version {{.Version}}\n")

	rootCmd.Flags().Bool("trace", false, "Start with pipeline tracing enabled")
	evalCmd.Flags().Bool("trace", false, "Print pipeline tracing for each expression")
	serveCmd.Flags().Int("port", 0, "HTTP server port (default 8787, env PORT)")
	serveCmd.Flags().String("host", "", "Bind address (default 0.0.0.0, env HOST)")

	rootCmd.AddCommand(evalCmd, serveCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	r := repl.New(os.Stdin, os.Stdout, os.Stderr)
	if on, _ := cmd.Flags().GetBool("trace"); on {
		r.SetTrace(true)
	}
	return r.Run()
}

func runEval(cmd *cobra.Command, args []string) error {
	trace, _ := cmd.Flags().GetBool("trace")

	for _, source := range args {
		var tr expr.Tracer
		if trace {
			tr = expr.NewWriterTracer(os.Stderr)
		}
		result, err := expr.EvaluateTraced(source, tr)
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		fmt.Println(expr.FormatResult(result))
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	port := envOrDefault("PORT", "8787")
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		port = fmt.Sprintf("%d", v)
	}
	host := envOrDefault("HOST", "0.0.0.0")
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		host = v
	}
	addr := fmt.Sprintf("%s:%s", host, port)

	s := store.New()
	server := api.New(s)

	ui := web.New(s)
	ui.Register(server.App())

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down calculator server...")
		if err := server.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Calculator API listening on %s", addr)
	return server.Listen(addr)
}

func runBatch(cmd *cobra.Command, args []string) error {
	suite, err := batch.LoadFile(args[0])
	if err != nil {
		return err
	}

	if suite.Name != "" {
		fmt.Printf("suite: %s\n", suite.Name)
	}

	outcomes := batch.Run(suite)
	failed := 0
	for _, o := range outcomes {
		name := o.Entry.Name
		if name == "" {
			name = o.Entry.Expr
		}
		switch {
		case o.Err != nil:
			failed++
			fmt.Printf("FAIL  %s: %v\n", name, o.Err)
		case !o.Passed():
			failed++
			fmt.Printf("FAIL  %s: got %s, want %s\n", name,
				expr.FormatResult(o.Result), expr.FormatResult(*o.Entry.Want))
		default:
			fmt.Printf("ok    %s = %s\n", name, expr.FormatResult(o.Result))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(outcomes))
	}
	fmt.Printf("%d expression(s) passed\n", len(outcomes))
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
