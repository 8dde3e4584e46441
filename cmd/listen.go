package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/live"
	"github.com/jsphweid/voicelead/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenStyle    string
	listenLead     bool
	listenRegister bool
)

func init() {
	listenCmd.Flags().StringVar(&listenStyle, "style", "close", "voicing style for held chords")
	listenCmd.Flags().BoolVar(&listenLead, "lead", true, "voice each chord close to the previous one")
	listenCmd.Flags().BoolVar(&listenRegister, "register", true, "keep voicings inside the style's register")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Re-voices chords held on a MIDI keyboard",
	Long: `Listens on VOICING_MIDI_IN, reads the held keys as a close chord rooted on
the lowest key and plays it in the chosen style on VOICING_MIDI_OUT.`,
	Run: func(cmd *cobra.Command, args []string) {
		style, err := model.ParseStyle(listenStyle)
		cobra.CheckErr(err)
		cobra.CheckErr(listen(style))
	},
}

func listen(style model.Style) error {
	defer midi.CloseDriver()

	in, err := midi.InPort(constants.GetMidiInPort())
	if err != nil {
		return err
	}
	out, err := midi.OutPort(constants.GetMidiOutPort())
	if err != nil {
		return err
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return err
	}

	v := live.NewVoicer(style, send)
	v.Lead = listenLead
	v.Register = listenRegister
	debounced := debounce.New(30 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			v.Press(key)
			debounced(v.Revoice)
		case msg.GetNoteEnd(&ch, &key):
			v.Release(key)
			debounced(v.Revoice)
		default:
			// ignore
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	log.Printf("[INFO] voicing %v from %v to %v, ctrl-c to stop", style, in, out)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	<-ctx.Done()
	return nil
}
