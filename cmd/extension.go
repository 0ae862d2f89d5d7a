package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvLedgerFile        = "DCS_LEDGER_FILE"
	EnvStore             = "DCS_STORE"
	EnvStrict            = "DCS_STRICT"
	EnvAddr              = "DCS_ADDR"
	EnvLocalCurrency     = "DCS_LOCAL_CURRENCY"
	EnvReferenceCurrency = "DCS_REFERENCE_CURRENCY"
	EnvModel             = "GEMINI_MODEL"
)

// RunExtension attempts to find and execute an external dcs-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "dcs-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// Pass the resolved configuration as environment variables
	cfg := LoadConfig()
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvLedgerFile+"="+cfg.LedgerFile)
	cmd.Env = append(cmd.Env, EnvStore+"="+cfg.Store)
	cmd.Env = append(cmd.Env, EnvStrict+"="+strconv.FormatBool(cfg.Strict))
	cmd.Env = append(cmd.Env, EnvLocalCurrency+"="+cfg.LocalCurrency)
	cmd.Env = append(cmd.Env, EnvReferenceCurrency+"="+cfg.ReferenceCurrency)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
