package main

import (
	"fmt"

	"folio/internal/gallery"
)

type HashSecretCmd struct {
	Secret string `arg:"" help:"Plain password to encode"`
}

func (cmd *HashSecretCmd) Run(g *Globals) error {
	hash, err := gallery.HashSecret(cmd.Secret, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Out, hash)
	return nil
}
