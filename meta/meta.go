// meta/meta.go
package meta

// NUM_RED defines the default number of red marbles.
const NUM_RED = 10

// NUM_BLUE defines the default number of blue marbles.
const NUM_BLUE = 10

// VERSION defines the default rule set.
const VERSION = "standard"

// FIRST_PLAYER defines who moves first by default.
const FIRST_PLAYER = "computer"

// LOG_LEVEL keeps logs out of the way of the game prompts.
const LOG_LEVEL = "warn"

// ENV_PREFIX prefixes environment overrides, e.g. NIM_NUM_RED.
const ENV_PREFIX = "NIM"
