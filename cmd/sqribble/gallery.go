package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/example/sqribble/internal/gallery"
)

type galleryCmd struct {
	dir string
	out io.Writer
	*root
	fs *flag.FlagSet
}

func (c *galleryCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseGalleryCmd(args []string, r *root) (*galleryCmd, error) {
	fs := flag.NewFlagSet("gallery", flag.ExitOnError)
	c := &galleryCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.dir, "dir", r.saveDir, "directory to list snapshots from")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *galleryCmd) Run() error {
	entries, err := gallery.List(c.dir)
	if err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintf(c.out, "no snapshots in %s\n", c.dir)
		return nil
	}
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d bytes\n", e.Name, e.ModTime.Format("2006-01-02 15:04:05"), e.Size)
	}
	return tw.Flush()
}
