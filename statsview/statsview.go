// This file is part of sicxe.
//
// sicxe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sicxe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sicxe.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sicxe/sicxe/logger"
)

// Launch the stats server in a new goroutine. An empty address will use
// DefaultAddress. Returns the URL of the statistics page.
func Launch(output io.Writer, address string) string {
	if address == "" {
		address = DefaultAddress
	}

	// configuration must happen before the manager is created
	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()

	go func() {
		if err := mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "statsview", "%v", err)
		}
	}()

	url := fmt.Sprintf("http://%s%s", address, page)
	fmt.Fprintf(output, "stats server available at %s\n", url)
	logger.Logf(logger.Allow, "statsview", "launched at %s", url)

	return url
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
