package chrplunk

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/chrplunk/ines"
)

func (c *CHRPlunk) findROMs(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			// Ignore any file greater than 16 MB
			if info.Size() > 16<<(10*2) {
				return nil
			}

			if filepath.Ext(file) != ".nes" {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *CHRPlunk) romWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			existing, err := c.db.FindByCRC(crc)
			if err != nil {
				errc <- err
				return
			}
			if existing != nil {
				continue
			}

			f, err := os.Open(file)
			if err != nil {
				errc <- err
				return
			}
			rom, err := ines.Decode(f)
			f.Close()
			if err != nil {
				// Not a valid image, leave it out of the catalog
				c.logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}

			if err := c.db.Add(&ROMInfo{
				Name:      strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
				CRC:       crc,
				Mapper:    rom.Mapper(),
				Mirroring: rom.Mirroring().String(),
				PRGSize:   rom.PRGSize(),
				CHRSize:   rom.CHRSize(),
				CHRBanks:  rom.BankCount(),
				Trainer:   rom.Trainer(),
			}); err != nil {
				errc <- err
				return
			}

			c.logger.Printf("Catalogued \"%s\" with CRC \"%s\"\n", file, crc)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path and catalogues every iNES ROM found beneath it.
func (c *CHRPlunk) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findROMs(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errc, err := c.romWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
