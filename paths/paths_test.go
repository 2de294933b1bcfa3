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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sicxe/sicxe/paths"
	"github.com/sicxe/sicxe/test"
)

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".sicxe", 0o700))

	pth, err := paths.ResourcePath("foo", "bar")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".sicxe", "foo", "bar"))

	// parent directory of the resource is created
	_, err = os.Stat(filepath.Join(".sicxe", "foo"))
	test.ExpectSuccess(t, err)
}

func TestConfigResourcePath(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)

	pth, err := paths.ResourcePath("preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, filepath.Base(pth), "preferences")
	test.ExpectEquality(t, filepath.Base(filepath.Dir(pth)), "sicxe")
}
