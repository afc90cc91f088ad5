package main

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/tui"
	"github.com/spf13/cobra"
)

// maxPictureBytes bounds profile pictures so the document stays small.
const maxPictureBytes = 2 << 20

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your profile",
	}

	cmd.AddCommand(showProfileCmd())
	cmd.AddCommand(setNameCmd())
	cmd.AddCommand(setPictureCmd())

	return cmd
}

func showProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())

			picture := "none"
			if uri := state.ProfilePicture(); uri != "" {
				mediaType, _, _ := strings.Cut(strings.TrimPrefix(uri, "data:"), ";")
				picture = fmt.Sprintf("%s, %d bytes encoded", mediaType, len(uri))
			}

			content := fmt.Sprintf("Username:     %s\nPicture:      %s\nTransactions: %d",
				state.Username(), picture, len(state.Transactions()))
			say(cmd, "%s", cli.RenderBox("Profile", content))
			return nil
		},
	}
}

func setNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "set-name <name>",
		Short:       "Change your username",
		Annotations: anyPhase(),
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := appstate.FromContext(cmd.Context())

			name, err := tui.ValidateUsername(args[0])
			if err != nil {
				return common.NewUserError(err.Error(), common.ErrInvalidInput)
			}

			state.SetUsername(cmd.Context(), name)
			say(cmd, "%s", cli.FormatSuccess("Username set to "+name))
			return nil
		},
	}
}

func setPictureCmd() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "set-picture <image-file|data-uri>",
		Short: "Set your profile picture",
		Args: func(cmd *cobra.Command, args []string) error {
			if remove {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			state := appstate.FromContext(cmd.Context())

			if remove {
				state.SetProfilePicture(cmd.Context(), "")
				say(cmd, "%s", cli.FormatSuccess("Profile picture removed."))
				return nil
			}

			uri, err := pictureDataURI(args[0])
			if err != nil {
				return err
			}
			state.SetProfilePicture(cmd.Context(), uri)
			say(cmd, "%s", cli.FormatSuccess("Profile picture updated."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&remove, "clear", false, "remove the profile picture")
	return cmd
}

// pictureDataURI accepts an image data URI as is, or reads an image file and
// encodes it as one.
func pictureDataURI(arg string) (string, error) {
	if strings.HasPrefix(arg, "data:image/") {
		return arg, nil
	}

	data, err := os.ReadFile(arg) // #nosec G304 -- user supplied path
	if err != nil {
		return "", common.NewUserError("Could not read the picture file.", err)
	}
	if len(data) > maxPictureBytes {
		return "", common.NewUserError("Pictures must be 2 MB or smaller.", common.ErrInvalidInput)
	}

	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		return "", common.NewUserError("That file is not an image.", common.ErrInvalidInput)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
