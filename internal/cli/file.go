package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/exaroton/exaroton-go/internal/errors"
	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Read, write and delete files on a server",
}

var fileInfoCmd = &cobra.Command{
	Use:   "info <server-id> <path>",
	Short: "Show file or directory metadata",
	Args:  cobra.ExactArgs(2),
	RunE:  runFileInfo,
}

var fileCatCmd = &cobra.Command{
	Use:   "cat <server-id> <path>",
	Short: "Print the content of a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runFileCat,
}

var filePutCmd = &cobra.Command{
	Use:   "put <server-id> <path> [local-file]",
	Short: "Upload a file (reads stdin if no local file is given)",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runFilePut,
}

var fileRmForce bool

var fileRmCmd = &cobra.Command{
	Use:   "rm <server-id> <path>",
	Short: "Delete a file or directory",
	Args:  cobra.ExactArgs(2),
	RunE:  runFileRm,
}

func init() {
	fileRmCmd.Flags().BoolVarP(&fileRmForce, "force", "f", false, "skip the confirmation prompt")

	rootCmd.AddCommand(fileCmd)
	fileCmd.AddCommand(fileInfoCmd)
	fileCmd.AddCommand(fileCatCmd)
	fileCmd.AddCommand(filePutCmd)
	fileCmd.AddCommand(fileRmCmd)
}

func runFileInfo(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	info, err := api.GetFileInfo(context.Background(), args[0], args[1])
	if err != nil {
		return wrapAPIError("failed to fetch file info", err)
	}

	kind := "file"
	if info.IsDirectory {
		kind = "directory"
	}
	cmd.Printf("Path: %s (%s)\n", info.Path, kind)
	if !info.IsDirectory {
		cmd.Printf("Size: %d bytes\n", info.Size)
	}
	cmd.Printf("Readable: %t, Writable: %t\n", info.IsReadable, info.IsWritable)
	for _, child := range info.Children {
		marker := ""
		if child.IsDirectory {
			marker = "/"
		}
		cmd.Printf("  %s%s\n", child.Name, marker)
	}
	return nil
}

func runFileCat(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	data, err := api.ReadFile(context.Background(), args[0], args[1])
	if err != nil {
		return wrapAPIError("failed to read file", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runFilePut(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 3 {
		data, err = os.ReadFile(args[2])
		if err != nil {
			return errors.NewGenericError(fmt.Sprintf("failed to read local file %s", args[2]), err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.NewGenericError("failed to read stdin", err)
		}
	}

	api, err := newAPI()
	if err != nil {
		return err
	}

	if err := api.WriteFile(context.Background(), args[0], args[1], data); err != nil {
		return wrapAPIError("failed to write file", err)
	}

	cmd.Printf("Wrote %d bytes to %s\n", len(data), args[1])
	return nil
}

func runFileRm(cmd *cobra.Command, args []string) error {
	if !fileRmForce {
		confirmed, err := confirmDeletion(args[1])
		if err != nil {
			return errors.NewGenericError("failed to read confirmation", err)
		}
		if !confirmed {
			cmd.Println("Aborted.")
			return nil
		}
	}

	api, err := newAPI()
	if err != nil {
		return err
	}

	if err := api.DeleteFile(context.Background(), args[0], args[1]); err != nil {
		return wrapAPIError("failed to delete file", err)
	}

	cmd.Printf("Deleted %s\n", args[1])
	return nil
}
