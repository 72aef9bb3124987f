package carve

import (
	"bufio"
	"os"
	"strings"

	"github.com/greyseam/carve/utils"
	"github.com/pkg/errors"
)

// Load reads a raster from a local file path or a URL and returns the
// intensity grid together with the declared maximum pixel value.
// Plain-text P2 rasters and the supported binary image formats are
// distinguished by sniffing the file content.
func Load(src string) (Grid, int, error) {
	if utils.IsValidUrl(src) {
		tmp, err := utils.DownloadRaster(src)
		if tmp != nil {
			defer os.Remove(tmp.Name())
			defer tmp.Close()
		}
		if err != nil {
			return nil, 0, errors.Wrapf(err, "failed to download the raster from %s", src)
		}
		src = tmp.Name()
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "could not open the raster file %s", src)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	head, err := br.Peek(len(pgmMagic))
	if err != nil {
		return nil, 0, errors.Wrapf(err, "could not read the raster file %s", src)
	}

	if strings.HasPrefix(string(head), pgmMagic) {
		return DecodePGM(br)
	}
	return DecodeImage(br)
}
