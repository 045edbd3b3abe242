package cli

const asciiLogo = `                        __
  _ __ ___   __ _ _ __ / _|___
 | '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \ |_/ __|
 | | | | | | (_| | |_) |  _\__ \
 |_| |_| |_|\__,_| .__/|_| |___/
                 |_|`
