package attribute

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind names one family of standard GDTF attribute. Families taking no
// index (e.g. "Dimmer") are complete attribute names by themselves;
// families taking one or two indices (e.g. "Gobo", "EffectsAdjust")
// are filled in against the registry's Sprintf-style pattern.
type Kind string

type def struct {
	group   FeatureGroup
	params  int // 0, 1, or 2
	pattern string
}

// registry enumerates every standard attribute family recognized by
// the engine, grounded on the GDTF attribute catalogue. Names and
// feature-group assignments follow the lighting-console convention of
// grouping wheel/effect attributes with their physical subsystem
// (Gobo wheels and animation discs under Gobo; shutter/iris/frost/
// prism and beam effects under Beam; media-server attributes under
// Video).
var registry = map[Kind]def{
	// --- Dimmer ---
	"Dimmer": {FeatureGroupDimmer, 0, "Dimmer"},

	// --- Position ---
	"Pan":                 {FeatureGroupPosition, 0, "Pan"},
	"Tilt":                {FeatureGroupPosition, 0, "Tilt"},
	"PanRotate":           {FeatureGroupPosition, 0, "PanRotate"},
	"TiltRotate":          {FeatureGroupPosition, 0, "TiltRotate"},
	"PositionEffect":      {FeatureGroupPosition, 0, "PositionEffect"},
	"PositionEffectRate":  {FeatureGroupPosition, 0, "PositionEffectRate"},
	"PositionEffectFade":  {FeatureGroupPosition, 0, "PositionEffectFade"},
	"XYZ_X":               {FeatureGroupPosition, 0, "XYZ_X"},
	"XYZ_Y":               {FeatureGroupPosition, 0, "XYZ_Y"},
	"XYZ_Z":               {FeatureGroupPosition, 0, "XYZ_Z"},
	"Rot_X":               {FeatureGroupPosition, 0, "Rot_X"},
	"Rot_Y":               {FeatureGroupPosition, 0, "Rot_Y"},
	"Rot_Z":               {FeatureGroupPosition, 0, "Rot_Z"},
	"Scale_X":             {FeatureGroupPosition, 0, "Scale_X"},
	"Scale_Y":             {FeatureGroupPosition, 0, "Scale_Y"},
	"Scale_Z":             {FeatureGroupPosition, 0, "Scale_Z"},
	"Scale_XYZ":           {FeatureGroupPosition, 0, "Scale_XYZ"},

	// --- Gobo ---
	"Gobo":                          {FeatureGroupGobo, 1, "Gobo%d"},
	"GoboSelectSpin":                {FeatureGroupGobo, 1, "Gobo%dSelectSpin"},
	"GoboSelectShake":               {FeatureGroupGobo, 1, "Gobo%dSelectShake"},
	"GoboSelectEffects":             {FeatureGroupGobo, 1, "Gobo%dSelectEffects"},
	"GoboWheelIndex":                {FeatureGroupGobo, 1, "Gobo%dWheelIndex"},
	"GoboWheelSpin":                 {FeatureGroupGobo, 1, "Gobo%dWheelSpin"},
	"GoboWheelShake":                {FeatureGroupGobo, 1, "Gobo%dWheelShake"},
	"GoboWheelRandom":               {FeatureGroupGobo, 1, "Gobo%dWheelRandom"},
	"GoboWheelAudio":                {FeatureGroupGobo, 1, "Gobo%dWheelAudio"},
	"GoboPos":                       {FeatureGroupGobo, 1, "Gobo%dPos"},
	"GoboPosRotate":                 {FeatureGroupGobo, 1, "Gobo%dPosRotate"},
	"GoboPosShake":                  {FeatureGroupGobo, 1, "Gobo%dPosShake"},
	"AnimationWheel":                {FeatureGroupGobo, 1, "AnimationWheel%d"},
	"AnimationWheelAudio":           {FeatureGroupGobo, 1, "AnimationWheel%dAudio"},
	"AnimationWheelMacro":           {FeatureGroupGobo, 1, "AnimationWheel%dMacro"},
	"AnimationWheelRandom":          {FeatureGroupGobo, 1, "AnimationWheel%dRandom"},
	"AnimationWheelSelectEffects":   {FeatureGroupGobo, 1, "AnimationWheel%dSelectEffects"},
	"AnimationWheelSelectShake":     {FeatureGroupGobo, 1, "AnimationWheel%dSelectShake"},
	"AnimationWheelSelectSpin":      {FeatureGroupGobo, 1, "AnimationWheel%dSelectSpin"},
	"AnimationWheelPos":             {FeatureGroupGobo, 1, "AnimationWheel%dPos"},
	"AnimationWheelPosRotate":       {FeatureGroupGobo, 1, "AnimationWheel%dPosRotate"},
	"AnimationWheelPosShake":        {FeatureGroupGobo, 1, "AnimationWheel%dPosShake"},
	"AnimationSystem":               {FeatureGroupGobo, 1, "AnimationSystem%d"},
	"AnimationSystemRamp":           {FeatureGroupGobo, 1, "AnimationSystem%dRamp"},
	"AnimationSystemShake":          {FeatureGroupGobo, 1, "AnimationSystem%dShake"},
	"AnimationSystemAudio":          {FeatureGroupGobo, 1, "AnimationSystem%dAudio"},
	"AnimationSystemRandom":         {FeatureGroupGobo, 1, "AnimationSystem%dRandom"},
	"AnimationSystemPos":            {FeatureGroupGobo, 1, "AnimationSystem%dPos"},
	"AnimationSystemPosRotate":      {FeatureGroupGobo, 1, "AnimationSystem%dPosRotate"},
	"AnimationSystemPosShake":       {FeatureGroupGobo, 1, "AnimationSystem%dPosShake"},
	"AnimationSystemPosRandom":      {FeatureGroupGobo, 1, "AnimationSystem%dPosRandom"},
	"AnimationSystemPosAudio":       {FeatureGroupGobo, 1, "AnimationSystem%dPosAudio"},
	"AnimationSystemMacro":          {FeatureGroupGobo, 1, "AnimationSystem%dMacro"},

	// --- Color ---
	"ColorEffects":      {FeatureGroupColor, 1, "ColorEffects%d"},
	"Color":             {FeatureGroupColor, 1, "Color%d"},
	"ColorWheelIndex":   {FeatureGroupColor, 1, "ColorWheel%dIndex"},
	"ColorWheelSpin":    {FeatureGroupColor, 1, "ColorWheel%dSpin"},
	"ColorWheelRandom":  {FeatureGroupColor, 1, "ColorWheel%dRandom"},
	"ColorWheelAudio":   {FeatureGroupColor, 1, "ColorWheel%dAudio"},
	"ColorMacro":        {FeatureGroupColor, 1, "ColorMacro%d"},
	"ColorMacroRate":    {FeatureGroupColor, 1, "ColorMacroRate%d"},
	"ColorAdd_R":        {FeatureGroupColor, 0, "ColorAdd_R"},
	"ColorAdd_G":        {FeatureGroupColor, 0, "ColorAdd_G"},
	"ColorAdd_B":        {FeatureGroupColor, 0, "ColorAdd_B"},
	"ColorAdd_C":        {FeatureGroupColor, 0, "ColorAdd_C"},
	"ColorAdd_M":        {FeatureGroupColor, 0, "ColorAdd_M"},
	"ColorAdd_Y":        {FeatureGroupColor, 0, "ColorAdd_Y"},
	"ColorAdd_RY":       {FeatureGroupColor, 0, "ColorAdd_RY"},
	"ColorAdd_GY":       {FeatureGroupColor, 0, "ColorAdd_GY"},
	"ColorAdd_GC":       {FeatureGroupColor, 0, "ColorAdd_GC"},
	"ColorAdd_BC":       {FeatureGroupColor, 0, "ColorAdd_BC"},
	"ColorAdd_BM":       {FeatureGroupColor, 0, "ColorAdd_BM"},
	"ColorAdd_RM":       {FeatureGroupColor, 0, "ColorAdd_RM"},
	"ColorAdd_W":        {FeatureGroupColor, 0, "ColorAdd_W"},
	"ColorAdd_WW":       {FeatureGroupColor, 0, "ColorAdd_WW"},
	"ColorAdd_CW":       {FeatureGroupColor, 0, "ColorAdd_CW"},
	"ColorAdd_UV":       {FeatureGroupColor, 0, "ColorAdd_UV"},
	"ColorSub_R":        {FeatureGroupColor, 0, "ColorSub_R"},
	"ColorSub_G":        {FeatureGroupColor, 0, "ColorSub_G"},
	"ColorSub_B":        {FeatureGroupColor, 0, "ColorSub_B"},
	"ColorSub_C":        {FeatureGroupColor, 0, "ColorSub_C"},
	"ColorSub_M":        {FeatureGroupColor, 0, "ColorSub_M"},
	"ColorSub_Y":        {FeatureGroupColor, 0, "ColorSub_Y"},
	"CTO":               {FeatureGroupColor, 0, "CTO"},
	"CTC":               {FeatureGroupColor, 0, "CTC"},
	"CTB":               {FeatureGroupColor, 0, "CTB"},
	"Tint":              {FeatureGroupColor, 0, "Tint"},
	"HSB_Hue":           {FeatureGroupColor, 0, "HSB_Hue"},
	"HSB_Saturation":    {FeatureGroupColor, 0, "HSB_Saturation"},
	"HSB_Brightness":    {FeatureGroupColor, 0, "HSB_Brightness"},
	"HSB_Quality":       {FeatureGroupColor, 0, "HSB_Quality"},
	"CIE_X":             {FeatureGroupColor, 0, "CIE_X"},
	"CIE_Y":             {FeatureGroupColor, 0, "CIE_Y"},
	"CIE_Brightness":    {FeatureGroupColor, 0, "CIE_Brightness"},
	"ColorRGB_Red":      {FeatureGroupColor, 0, "ColorRGB_Red"},
	"ColorRGB_Green":    {FeatureGroupColor, 0, "ColorRGB_Green"},
	"ColorRGB_Blue":     {FeatureGroupColor, 0, "ColorRGB_Blue"},
	"ColorRGB_Cyan":     {FeatureGroupColor, 0, "ColorRGB_Cyan"},
	"ColorRGB_Magenta":  {FeatureGroupColor, 0, "ColorRGB_Magenta"},
	"ColorRGB_Yellow":   {FeatureGroupColor, 0, "ColorRGB_Yellow"},
	"ColorRGB_Quality":  {FeatureGroupColor, 0, "ColorRGB_Quality"},

	// --- Beam ---
	"StrobeDuration":                    {FeatureGroupBeam, 0, "StrobeDuration"},
	"StrobeRate":                        {FeatureGroupBeam, 0, "StrobeRate"},
	"StrobeFrequency":                   {FeatureGroupBeam, 0, "StrobeFrequency"},
	"StrobeModeShutter":                 {FeatureGroupBeam, 0, "StrobeModeShutter"},
	"StrobeModeStrobe":                  {FeatureGroupBeam, 0, "StrobeModeStrobe"},
	"StrobeModePulse":                   {FeatureGroupBeam, 0, "StrobeModePulse"},
	"StrobeModePulseOpen":               {FeatureGroupBeam, 0, "StrobeModePulseOpen"},
	"StrobeModePulseClose":              {FeatureGroupBeam, 0, "StrobeModePulseClose"},
	"StrobeModeRandom":                  {FeatureGroupBeam, 0, "StrobeModeRandom"},
	"StrobeModeRandomPulse":             {FeatureGroupBeam, 0, "StrobeModeRandomPulse"},
	"StrobeModeRandomPulseOpen":         {FeatureGroupBeam, 0, "StrobeModeRandomPulseOpen"},
	"StrobeModeRandomPulseClose":        {FeatureGroupBeam, 0, "StrobeModeRandomPulseClose"},
	"StrobeModeEffect":                  {FeatureGroupBeam, 0, "StrobeModeEffect"},
	"Shutter":                           {FeatureGroupBeam, 1, "Shutter%d"},
	"ShutterStrobe":                     {FeatureGroupBeam, 1, "Shutter%dStrobe"},
	"ShutterStrobePulse":                {FeatureGroupBeam, 1, "Shutter%dStrobePulse"},
	"ShutterStrobePulseClose":           {FeatureGroupBeam, 1, "Shutter%dStrobePulseClose"},
	"ShutterStrobePulseOpen":            {FeatureGroupBeam, 1, "Shutter%dStrobePulseOpen"},
	"ShutterStrobeRandom":               {FeatureGroupBeam, 1, "Shutter%dStrobeRandom"},
	"ShutterStrobeRandomPulse":          {FeatureGroupBeam, 1, "Shutter%dStrobeRandomPulse"},
	"ShutterStrobeRandomPulseClose":     {FeatureGroupBeam, 1, "Shutter%dStrobeRandomPulseClose"},
	"ShutterStrobeRandomPulseOpen":      {FeatureGroupBeam, 1, "Shutter%dStrobeRandomPulseOpen"},
	"ShutterStrobeEffect":               {FeatureGroupBeam, 1, "Shutter%dStrobeEffect"},
	"Iris":                              {FeatureGroupBeam, 0, "Iris"},
	"IrisStrobe":                        {FeatureGroupBeam, 0, "IrisStrobe"},
	"IrisStrobeRandom":                  {FeatureGroupBeam, 0, "IrisStrobeRandom"},
	"IrisPulseClose":                    {FeatureGroupBeam, 0, "IrisPulseClose"},
	"IrisPulseOpen":                     {FeatureGroupBeam, 0, "IrisPulseOpen"},
	"IrisRandomPulseClose":              {FeatureGroupBeam, 0, "IrisRandomPulseClose"},
	"IrisRandomPulseOpen":               {FeatureGroupBeam, 0, "IrisRandomPulseOpen"},
	"Frost":                             {FeatureGroupBeam, 1, "Frost%d"},
	"FrostPulseOpen":                    {FeatureGroupBeam, 1, "Frost%dPulseOpen"},
	"FrostPulseClose":                   {FeatureGroupBeam, 1, "Frost%dPulseClose"},
	"FrostRamp":                         {FeatureGroupBeam, 1, "Frost%dRamp"},
	"Prism":                             {FeatureGroupBeam, 1, "Prism%d"},
	"PrismSelectSpin":                   {FeatureGroupBeam, 1, "Prism%dSelectSpin"},
	"PrismMacro":                        {FeatureGroupBeam, 1, "Prism%dMacro"},
	"PrismPos":                          {FeatureGroupBeam, 1, "Prism%dPos"},
	"PrismPosRotate":                    {FeatureGroupBeam, 1, "Prism%dPosRotate"},
	"Effects":                           {FeatureGroupBeam, 1, "Effects%d"},
	"EffectsRate":                       {FeatureGroupBeam, 1, "Effects%dRate"},
	"EffectsFade":                       {FeatureGroupBeam, 1, "Effects%dFade"},
	"EffectsAdjust":                     {FeatureGroupBeam, 2, "Effects%dAdjust%d"},
	"EffectsPos":                        {FeatureGroupBeam, 1, "Effects%dPos"},
	"EffectsPosRotate":                  {FeatureGroupBeam, 1, "Effects%dPosRotate"},
	"EffectsSync":                       {FeatureGroupBeam, 0, "EffectsSync"},
	"BeamShaper":                        {FeatureGroupBeam, 0, "BeamShaper"},
	"BeamShaperMacro":                   {FeatureGroupBeam, 0, "BeamShaperMacro"},
	"BeamShaperPos":                     {FeatureGroupBeam, 0, "BeamShaperPos"},
	"BeamShaperPosRotate":               {FeatureGroupBeam, 0, "BeamShaperPosRotate"},

	// --- Focus ---
	"Zoom":          {FeatureGroupFocus, 0, "Zoom"},
	"ZoomModeSpot":  {FeatureGroupFocus, 0, "ZoomModeSpot"},
	"ZoomModeBeam":  {FeatureGroupFocus, 0, "ZoomModeBeam"},
	"DigitalZoom":   {FeatureGroupFocus, 0, "DigitalZoom"},
	"Focus":         {FeatureGroupFocus, 1, "Focus%d"},
	"FocusAdjust":   {FeatureGroupFocus, 1, "Focus%dAdjust"},
	"FocusDistance": {FeatureGroupFocus, 1, "Focus%dDistance"},

	// --- Control ---
	"Control":                     {FeatureGroupControl, 1, "Control%d"},
	"DimmerMode":                  {FeatureGroupControl, 0, "DimmerMode"},
	"DimmerCurve":                 {FeatureGroupControl, 0, "DimmerCurve"},
	"BlackoutMode":                {FeatureGroupControl, 0, "BlackoutMode"},
	"LedFrequency":                {FeatureGroupControl, 0, "LedFrequency"},
	"LedZoneMode":                 {FeatureGroupControl, 0, "LedZoneMode"},
	"PixelMode":                   {FeatureGroupControl, 0, "PixelMode"},
	"PanMode":                     {FeatureGroupControl, 0, "PanMode"},
	"TiltMode":                    {FeatureGroupControl, 0, "TiltMode"},
	"PanTiltMode":                 {FeatureGroupControl, 0, "PanTiltMode"},
	"PositionModes":               {FeatureGroupControl, 0, "PositionModes"},
	"GoboWheelMode":                {FeatureGroupControl, 1, "Gobo%dWheelMode"},
	"GoboWheelShortcutMode":       {FeatureGroupControl, 0, "GoboWheelShortcutMode"},
	"AnimationWheelMode":          {FeatureGroupControl, 1, "Animation%dWheelMode"},
	"AnimationWheelShortcutMode":  {FeatureGroupControl, 0, "AnimationWheelShortcutMode"},
	"ColorMode":                   {FeatureGroupControl, 1, "Color%dMode"},
	"ColorWheelShortcutMode":      {FeatureGroupControl, 0, "ColorWheelShortcutMode"},
	"CyanMode":                    {FeatureGroupControl, 0, "CyanMode"},
	"MagentaMode":                 {FeatureGroupControl, 0, "MagentaMode"},
	"YellowMode":                  {FeatureGroupControl, 0, "YellowMode"},
	"ColorMixMode":                {FeatureGroupControl, 0, "ColorMixMode"},
	"ChromaticMode":               {FeatureGroupControl, 0, "ChromaticMode"},
	"ColorCalibrationMode":        {FeatureGroupControl, 0, "ColorCalibrationMode"},
	"ColorConsistency":            {FeatureGroupControl, 0, "ColorConsistency"},
	"ColorControl":                {FeatureGroupControl, 0, "ColorControl"},
	"ColorModelMode":              {FeatureGroupControl, 0, "ColorModelMode"},
	"ColorSettingsReset":          {FeatureGroupControl, 0, "ColorSettingsReset"},
	"ColorUniformity":             {FeatureGroupControl, 0, "ColorUniformity"},
	"CRIMode":                     {FeatureGroupControl, 0, "CRIMode"},
	"CustomColor":                 {FeatureGroupControl, 0, "CustomColor"},
	"UVStability":                 {FeatureGroupControl, 0, "UVStability"},
	"WavelengthCorrection":        {FeatureGroupControl, 0, "WavelengthCorrection"},
	"WhiteCount":                  {FeatureGroupControl, 0, "WhiteCount"},
	"StrobeMode":                  {FeatureGroupControl, 0, "StrobeMode"},
	"ZoomMode":                    {FeatureGroupControl, 0, "ZoomMode"},
	"FocusMode":                   {FeatureGroupControl, 0, "FocusMode"},
	"IrisMode":                    {FeatureGroupControl, 0, "IrisMode"},
	"FanMode":                     {FeatureGroupControl, 1, "Fan%dMode"},
	"FollowSpotMode":              {FeatureGroupControl, 0, "FollowSpotMode"},
	"BeamEffectIndexRotateMode":   {FeatureGroupControl, 0, "BeamEffectIndexRotateMode"},
	"IntensityMSpeed":             {FeatureGroupControl, 0, "IntensityMSpeed"},
	"PositionMSpeed":              {FeatureGroupControl, 0, "PositionMSpeed"},
	"ColorMixMSpeed":              {FeatureGroupControl, 0, "ColorMixMSpeed"},
	"ColorWheelSelectMSpeed":      {FeatureGroupControl, 0, "ColorWheelSelectMSpeed"},
	"GoboWheelMSpeed":             {FeatureGroupControl, 1, "Gobo%dWheelMSpeed"},
	"IrisMSpeed":                  {FeatureGroupControl, 0, "IrisMSpeed"},
	"PrismMSpeed":                 {FeatureGroupControl, 1, "Prism%dMSpeed"},
	"FocusMSpeed":                 {FeatureGroupControl, 0, "FocusMSpeed"},
	"FrostMSpeed":                 {FeatureGroupControl, 1, "Frost%dMSpeed"},
	"ZoomMSpeed":                  {FeatureGroupControl, 0, "ZoomMSpeed"},
	"FrameMSpeed":                 {FeatureGroupControl, 0, "FrameMSpeed"},
	"GlobalMSpeed":                {FeatureGroupControl, 0, "GlobalMSpeed"},
	"ReflectorAdjust":             {FeatureGroupControl, 0, "ReflectorAdjust"},
	"FixtureGlobalReset":          {FeatureGroupControl, 0, "FixtureGlobalReset"},
	"DimmerReset":                 {FeatureGroupControl, 0, "DimmerReset"},
	"ShutterReset":                {FeatureGroupControl, 0, "ShutterReset"},
	"BeamReset":                   {FeatureGroupControl, 0, "BeamReset"},
	"ColorMixReset":               {FeatureGroupControl, 0, "ColorMixReset"},
	"ColorWheelReset":             {FeatureGroupControl, 0, "ColorWheelReset"},
	"FocusReset":                  {FeatureGroupControl, 0, "FocusReset"},
	"FrameReset":                  {FeatureGroupControl, 0, "FrameReset"},
	"GoboWheelReset":              {FeatureGroupControl, 0, "GoboWheelReset"},
	"IntensityReset":              {FeatureGroupControl, 0, "IntensityReset"},
	"IrisReset":                   {FeatureGroupControl, 0, "IrisReset"},
	"PositionReset":               {FeatureGroupControl, 0, "PositionReset"},
	"PanReset":                    {FeatureGroupControl, 0, "PanReset"},
	"TiltReset":                   {FeatureGroupControl, 0, "TiltReset"},
	"ZoomReset":                   {FeatureGroupControl, 0, "ZoomReset"},
	"CTBReset":                    {FeatureGroupControl, 0, "CTBReset"},
	"CTOReset":                    {FeatureGroupControl, 0, "CTOReset"},
	"CTCReset":                    {FeatureGroupControl, 0, "CTCReset"},
	"AnimationSystemReset":        {FeatureGroupControl, 0, "AnimationSystemReset"},
	"FixtureCalibrationReset":     {FeatureGroupControl, 0, "FixtureCalibrationReset"},
	"Function":                    {FeatureGroupControl, 0, "Function"},
	"LampControl":                 {FeatureGroupControl, 0, "LampControl"},
	"DisplayIntensity":            {FeatureGroupControl, 0, "DisplayIntensity"},
	"DMXInput":                    {FeatureGroupControl, 0, "DMXInput"},
	"NoFeature":                   {FeatureGroupControl, 0, "NoFeature"},
	"Blower":                      {FeatureGroupControl, 1, "Blower%d"},
	"Fan":                         {FeatureGroupControl, 1, "Fan%d"},
	"Fog":                         {FeatureGroupControl, 1, "Fog%d"},
	"Haze":                        {FeatureGroupControl, 1, "Haze%d"},
	"LampPowerMode":               {FeatureGroupControl, 0, "LampPowerMode"},
	"Fans":                        {FeatureGroupControl, 0, "Fans"},

	// --- Shapers ---
	"BladeA":            {FeatureGroupShapers, 1, "Blade%dA"},
	"BladeB":            {FeatureGroupShapers, 1, "Blade%dB"},
	"BladeRot":          {FeatureGroupShapers, 1, "Blade%dRot"},
	"ShaperRot":         {FeatureGroupShapers, 0, "ShaperRot"},
	"ShaperMacros":      {FeatureGroupShapers, 0, "ShaperMacros"},
	"ShaperMacrosSpeed": {FeatureGroupShapers, 0, "ShaperMacrosSpeed"},
	"BladeSoftA":        {FeatureGroupShapers, 1, "BladeSoft%dA"},
	"BladeSoftB":        {FeatureGroupShapers, 1, "BladeSoft%dB"},
	"KeyStoneA":         {FeatureGroupShapers, 1, "KeyStone%dA"},
	"KeyStoneB":         {FeatureGroupShapers, 1, "KeyStone%dB"},

	// --- Video ---
	"Video":                {FeatureGroupVideo, 0, "Video"},
	"VideoEffectType":      {FeatureGroupVideo, 1, "VideoEffect%dType"},
	"VideoEffectParameter": {FeatureGroupVideo, 2, "VideoEffect%dParameter%d"},
	"VideoCamera":          {FeatureGroupVideo, 1, "VideoCamera%d"},
	"VideoSoundVolume":     {FeatureGroupVideo, 1, "VideoSoundVolume%d"},
	"VideoBlendMode":       {FeatureGroupVideo, 0, "VideoBlendMode"},
	"InputSource":          {FeatureGroupVideo, 0, "InputSource"},
	"FieldOfView":          {FeatureGroupVideo, 0, "FieldOfView"},
	"VideoBoost_R":         {FeatureGroupVideo, 0, "VideoBoost_R"},
	"VideoBoost_G":         {FeatureGroupVideo, 0, "VideoBoost_G"},
	"VideoBoost_B":         {FeatureGroupVideo, 0, "VideoBoost_B"},
	"VideoHueShift":        {FeatureGroupVideo, 0, "VideoHueShift"},
	"VideoSaturation":      {FeatureGroupVideo, 0, "VideoSaturation"},
	"VideoBrightness":      {FeatureGroupVideo, 0, "VideoBrightness"},
	"VideoContrast":        {FeatureGroupVideo, 0, "VideoContrast"},
	"VideoKeyColor_R":      {FeatureGroupVideo, 0, "VideoKeyColor_R"},
	"VideoKeyColor_G":      {FeatureGroupVideo, 0, "VideoKeyColor_G"},
	"VideoKeyColor_B":      {FeatureGroupVideo, 0, "VideoKeyColor_B"},
	"VideoKeyIntensity":    {FeatureGroupVideo, 0, "VideoKeyIntensity"},
	"VideoKeyTolerance":    {FeatureGroupVideo, 0, "VideoKeyTolerance"},
	"MediaFolder":          {FeatureGroupVideo, 1, "MediaFolder%d"},
	"MediaContent":         {FeatureGroupVideo, 1, "MediaContent%d"},
	"ModelFolder":          {FeatureGroupVideo, 1, "ModelFolder%d"},
	"ModelContent":         {FeatureGroupVideo, 1, "ModelContent%d"},
	"PlayMode":             {FeatureGroupVideo, 0, "PlayMode"},
	"PlayBegin":            {FeatureGroupVideo, 0, "PlayBegin"},
	"PlayEnd":              {FeatureGroupVideo, 0, "PlayEnd"},
	"PlaySpeed":            {FeatureGroupVideo, 0, "PlaySpeed"},
}

// Attribute is either one of the registry's standard, possibly
// parameterized families, or an opaque Custom escape hatch for
// manufacturer-specific names the catalogue doesn't know about.
type Attribute struct {
	kind   Kind
	n, m   int
	custom string
}

// New constructs a standard Attribute from its family and the indices
// the family's pattern requires (zero, one, or two small integers).
func New(kind Kind, indices ...int) (Attribute, error) {
	d, ok := registry[kind]
	if !ok {
		return Attribute{}, fmt.Errorf("%w: unknown attribute family %q", ErrUnknownKind, kind)
	}
	if len(indices) != d.params {
		return Attribute{}, fmt.Errorf("attribute family %q takes %d index(es), got %d", kind, d.params, len(indices))
	}
	a := Attribute{kind: kind}
	if len(indices) > 0 {
		a.n = indices[0]
	}
	if len(indices) > 1 {
		a.m = indices[1]
	}
	return a, nil
}

// MustNew is New, panicking on error; for use with compile-time-known
// families (constant Kind literals) where an error can only indicate
// a programming mistake.
func MustNew(kind Kind, indices ...int) Attribute {
	a, err := New(kind, indices...)
	if err != nil {
		panic(err)
	}
	return a
}

// NewCustom wraps an arbitrary manufacturer-specific attribute name.
func NewCustom(name string) Attribute {
	return Attribute{custom: name}
}

// IsCustom reports whether a is the Custom escape hatch rather than a
// standard cataloged family.
func (a Attribute) IsCustom() bool {
	return a.kind == "" && a.custom != ""
}

// Kind returns the attribute's family; empty for Custom attributes.
func (a Attribute) Kind() Kind {
	return a.kind
}

// Indices returns the (n, m) parameters of a parameterized attribute;
// zero for families that take fewer than two indices.
func (a Attribute) Indices() (n, m int) {
	return a.n, a.m
}

// String renders the canonical GDTF attribute name.
func (a Attribute) String() string {
	if a.IsCustom() {
		return a.custom
	}
	d, ok := registry[a.kind]
	if !ok {
		return string(a.kind)
	}
	switch d.params {
	case 0:
		return d.pattern
	case 1:
		return fmt.Sprintf(d.pattern, a.n)
	case 2:
		return fmt.Sprintf(d.pattern, a.n, a.m)
	default:
		return d.pattern
	}
}

// FeatureGroup returns the attribute's feature-group classification.
// Custom attributes have none.
func (a Attribute) FeatureGroup() (FeatureGroup, bool) {
	if a.IsCustom() {
		return 0, false
	}
	d, ok := registry[a.kind]
	if !ok {
		return 0, false
	}
	return d.group, true
}

type compiledPattern struct {
	kind   Kind
	params int
	re     *regexp.Regexp
}

var (
	literalIndex map[string]Kind
	patterns     []compiledPattern
)

func init() {
	literalIndex = make(map[string]Kind)
	for kind, d := range registry {
		if d.params == 0 {
			literalIndex[d.pattern] = kind
			continue
		}
		segments := strings.Split(d.pattern, "%d")
		var b strings.Builder
		b.WriteString("^")
		for i, seg := range segments {
			if i > 0 {
				b.WriteString("([0-9]+)")
			}
			b.WriteString(regexp.QuoteMeta(seg))
		}
		b.WriteString("$")
		patterns = append(patterns, compiledPattern{kind: kind, params: d.params, re: regexp.MustCompile(b.String())})
	}
}

// Parse recognizes the canonical text form of any standard attribute
// and falls back to Custom for anything it doesn't recognize — this
// mirrors the source grammar's "attribute name parsing never fails"
// contract; use ParseStandard to reject unrecognized names instead.
func Parse(s string) Attribute {
	if kind, ok := literalIndex[s]; ok {
		return Attribute{kind: kind}
	}
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		a := Attribute{kind: p.kind}
		if p.params >= 1 {
			n, _ := strconv.Atoi(m[1])
			a.n = n
		}
		if p.params >= 2 {
			v, _ := strconv.Atoi(m[2])
			a.m = v
		}
		return a
	}
	return NewCustom(s)
}

// ParseStandard is Parse, but rejects names that resolve to Custom.
func ParseStandard(s string) (Attribute, error) {
	a := Parse(s)
	if a.IsCustom() {
		return Attribute{}, fmt.Errorf("%w: %q", ErrInvalidAttribute, s)
	}
	return a, nil
}
