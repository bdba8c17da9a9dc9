package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvBundleFile = "HCMP_BUNDLE_FILE"
	EnvModel      = "HCMP_MODEL"
	EnvCurrency   = "HCMP_CURRENCY"
	EnvCacheDir   = "HCMP_CACHE_DIR"
	EnvVerbose    = "HCMP_VERBOSE"
)

// RunExtension attempts to find and execute an external hcmp-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "hcmp-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvBundleFile+"="+*bundleFile)
	cmd.Env = append(cmd.Env, EnvModel+"="+*model)
	cmd.Env = append(cmd.Env, EnvCurrency+"="+*defaultCurrency)
	cmd.Env = append(cmd.Env, EnvCacheDir+"="+*cacheDir)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
